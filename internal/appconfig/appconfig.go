// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultInputPath is where the external benchmark runner drops its results.
	DefaultInputPath = "benchmarks/metrics/benchmark_results.json"
	// DefaultChartPath is the destination for the rendered comparison chart.
	DefaultChartPath = "llm_performance_comparison.png"
	// DefaultCSVPath is the destination for the summary table CSV.
	DefaultCSVPath = "performance_comparison_table.csv"
)

// Config represents the top-level application configuration.
type Config struct {
	InputPath     string `json:"inputPath,omitempty"`
	ChartPath     string `json:"chartPath,omitempty"`
	CSVPath       string `json:"csvPath,omitempty"`
	MetricsOutput string `json:"metricsOutput,omitempty"`
	Debug         bool   `json:"debug"`
	LogFile       string `json:"logFile,omitempty"`
	ConfigPath    string `json:"-"`
}

// ApplyDefaults fills any unset path with its fixed default location.
func (c *Config) ApplyDefaults() {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.ChartPath == "" {
		c.ChartPath = DefaultChartPath
	}
	if c.CSVPath == "" {
		c.CSVPath = DefaultCSVPath
	}
}

// LogFilePath returns the configured log file path, if any.
func (c Config) LogFilePath() string {
	return c.LogFile
}

// Load reads a JSON configuration file and applies defaults. A missing file
// is not an error: the zero configuration with defaults is returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			cfg.ConfigPath = path
			return &cfg, nil
		}
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	cfg.ConfigPath = path
	return &cfg, nil
}
