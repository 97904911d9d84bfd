// internal/benchmark/loader_test.go
package benchmark

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFile verifies that an absent results file is a normal
// condition: Load returns nil and, as a first-run convenience, creates the
// directory the benchmark runner will later write into.
func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics", "benchmark_results.json")

	if rec := Load(path); rec != nil {
		t.Fatalf("expected nil record for missing file, got %+v", rec)
	}

	info, err := os.Stat(filepath.Join(dir, "metrics"))
	if err != nil {
		t.Fatalf("expected results directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected results path to be a directory")
	}
}

// TestLoadMalformedJSON verifies parse failures degrade to "no data" rather
// than propagating.
func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.json")
	if err := os.WriteFile(path, []byte(`{"results": {`), 0o644); err != nil {
		t.Fatal(err)
	}

	if rec := Load(path); rec != nil {
		t.Fatalf("expected nil record for malformed JSON, got %+v", rec)
	}
}

// TestLoadParsesRecord verifies a well-formed document round-trips into the
// typed record, including the nested streaming and caching shapes.
func TestLoadParsesRecord(t *testing.T) {
	doc := `{
        "timestamp": "2025-11-02T10:00:00Z",
        "testType": "comparison",
        "results": {
            "streaming": [
                {
                    "streaming": {"mean": 500, "ttfb": {"mean": 100}, "successRate": 100},
                    "nonStreaming": {"mean": 20000, "successRate": 90}
                }
            ],
            "caching": [
                {"overall": {"performance": {"warmCacheMean": 200}, "overallSuccessRate": 95}}
            ]
        }
    }`
	path := filepath.Join(t.TempDir(), "benchmark_results.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := Load(path)
	if rec == nil {
		t.Fatal("expected a record for well-formed JSON, got nil")
	}
	if rec.Timestamp != "2025-11-02T10:00:00Z" {
		t.Fatalf("unexpected timestamp: %q", rec.Timestamp)
	}
	if rec.Results == nil || len(rec.Results.Streaming) != 1 {
		t.Fatalf("expected one streaming test case, got %+v", rec.Results)
	}
	tc := rec.Results.Streaming[0]
	if tc.Streaming.TTFB.Mean != 100 {
		t.Fatalf("unexpected ttfb mean: %v", tc.Streaming.TTFB.Mean)
	}
	if tc.NonStreaming.Mean != 20000 {
		t.Fatalf("unexpected nonStreaming mean: %v", tc.NonStreaming.Mean)
	}
	if len(rec.Results.Caching) != 1 {
		t.Fatalf("expected one caching result, got %d", len(rec.Results.Caching))
	}
	overall := rec.Results.Caching[0].Overall
	if overall.Performance.WarmCacheMean != 200 {
		t.Fatalf("unexpected warm cache mean: %v", overall.Performance.WarmCacheMean)
	}
	if overall.OverallSuccessRate == nil || *overall.OverallSuccessRate != 95 {
		t.Fatalf("unexpected overall success rate: %v", overall.OverallSuccessRate)
	}
}

// TestLoadIgnoresUnknownCategories verifies extra result categories do not
// interfere with parsing the recognized ones.
func TestLoadIgnoresUnknownCategories(t *testing.T) {
	doc := `{"results": {"batching": [{"mean": 1}], "streaming": []}}`
	path := filepath.Join(t.TempDir(), "benchmark_results.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := Load(path)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}
	if rec.Results == nil {
		t.Fatal("expected results to be present")
	}
	if len(rec.Results.Streaming) != 0 {
		t.Fatalf("expected empty streaming results, got %d", len(rec.Results.Streaming))
	}
}

// TestValidateRecord verifies the advisory schema check accepts a conforming
// document and reports type mismatches without failing.
func TestValidateRecord(t *testing.T) {
	good := []byte(`{"timestamp": "t", "results": {"streaming": []}}`)
	if msgs := validateRecord(good); len(msgs) != 0 {
		t.Fatalf("expected no schema notices, got %v", msgs)
	}

	bad := []byte(`{"timestamp": 42}`)
	if msgs := validateRecord(bad); len(msgs) == 0 {
		t.Fatal("expected schema notices for a mistyped timestamp")
	}
}
