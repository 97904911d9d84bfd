// internal/commands/root.go
package llmreport

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/perflab/llmreport/internal/appconfig"
	"github.com/perflab/llmreport/internal/logging"
	"github.com/perflab/llmreport/internal/report"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd generates the performance comparison report. It needs no
// arguments: every path has a fixed default, and flags or the optional
// config file override them.
var rootCmd = &cobra.Command{
	Use:   "llmreport",
	Short: "llmreport — render the LLM technique comparison chart and table",
	Long: `Read the benchmark results JSON left behind by benchmark runs, derive
summary metrics for the four comparison techniques (plain, streaming,
cached, combined), and write the comparison chart PNG and the summary
table CSV. Missing input is not an error: representative metrics are
reported instead, with a notice.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for flagName, key := range map[string]string{
			"input":          "inputPath",
			"chart-output":   "chartPath",
			"csv-output":     "csvPath",
			"metrics-output": "metricsOutput",
			"logFile":        "logFile",
		} {
			if !cmd.Flags().Changed(flagName) {
				_ = cmd.Flags().Set(flagName, viper.GetString(key))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ApplyDefaults()
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		opts := report.Options{
			InputPath:   cfg.InputPath,
			ChartPath:   cfg.ChartPath,
			CSVPath:     cfg.CSVPath,
			MetricsPath: cfg.MetricsOutput,
			Debug:       cfg.Debug,
		}
		return report.Run(opts, cmd.OutOrStdout())
	},
}

// Execute runs the root command. This is called by main.main() and only
// needs to happen once.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "dump the extracted technique metrics")
	rootCmd.PersistentFlags().String("input", appconfig.DefaultInputPath, "path to the benchmark results JSON")
	rootCmd.PersistentFlags().String("chart-output", appconfig.DefaultChartPath, "destination chart PNG path")
	rootCmd.PersistentFlags().String("csv-output", appconfig.DefaultCSVPath, "destination summary table CSV path")
	rootCmd.PersistentFlags().String("metrics-output", "", "optional path to write the extracted metrics JSON")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("inputPath", rootCmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("chartPath", rootCmd.PersistentFlags().Lookup("chart-output"))
	_ = viper.BindPFlag("csvPath", rootCmd.PersistentFlags().Lookup("csv-output"))
	_ = viper.BindPFlag("metricsOutput", rootCmd.PersistentFlags().Lookup("metrics-output"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file, tolerating its absence.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
