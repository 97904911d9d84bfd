// internal/benchmark/loader.go
// Package benchmark reads the results document left behind by benchmark runs.
package benchmark

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/perflab/llmreport/internal/logging"
)

// Load reads and parses the benchmark results document at path. Any failure
// to read or parse is converted into a nil record with a diagnostic log line;
// downstream code treats nil as "no measured data". As a convenience for
// first runs, the directory holding the input file is created if missing.
func Load(path string) *Record {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.LogEvent("unable to create results directory %s: %v", dir, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.LogEvent("no benchmark results found at %s", path)
		} else {
			logging.LogEvent("unable to read benchmark results %s: %v", path, err)
		}
		return nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		logging.LogEvent("unable to parse benchmark results %s: %v", path, err)
		return nil
	}

	for _, msg := range validateRecord(data) {
		logging.LogEvent("benchmark results schema notice (%s): %s", path, msg)
	}

	return &rec
}
