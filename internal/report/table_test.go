// internal/report/table_test.go
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perflab/llmreport/internal/metrics"
)

func defaultSet() metrics.Set {
	set := make(metrics.Set, len(metrics.Order))
	for _, t := range metrics.Order {
		set[t] = metrics.Defaults(t)
	}
	return set
}

// TestBuildTableShape verifies the table is a header plus six metric rows,
// each with one column per technique and a trailing improvement column.
func TestBuildTableShape(t *testing.T) {
	table := BuildTable(defaultSet())

	if len(table) != 7 {
		t.Fatalf("expected 7 rows (header + 6 metrics), got %d", len(table))
	}
	for i, row := range table {
		if len(row) != 6 {
			t.Fatalf("row %d: expected 6 columns, got %d", i, len(row))
		}
	}

	wantHeader := []string{"Metric", "Plain LLM", "Streaming", "Cached", "Combined", "Best Improvement"}
	for j, label := range wantHeader {
		if table[0][j] != label {
			t.Fatalf("header column %d: got %q want %q", j, table[0][j], label)
		}
	}

	wantMetrics := []string{"Total Response Time", "Time to First Byte", "Throughput", "Success Rate", "User Experience", "Cost Effectiveness"}
	for i, label := range wantMetrics {
		if table[i+1][0] != label {
			t.Fatalf("row %d metric label: got %q want %q", i+1, table[i+1][0], label)
		}
	}
}

// TestBuildTableDefaults checks the rendered cells for the representative
// default metrics, including the documented "25.8s" baseline response time.
func TestBuildTableDefaults(t *testing.T) {
	table := BuildTable(defaultSet())

	rt := table[1]
	want := []string{"Total Response Time", "25.8s", "3.2s", "0.15s", "0.12s", "99.5% faster"}
	for j := range want {
		if rt[j] != want[j] {
			t.Fatalf("response time column %d: got %q want %q", j, rt[j], want[j])
		}
	}

	ttfb := table[2]
	if ttfb[1] != "25.8s" || ttfb[2] != "0.45s" {
		t.Fatalf("unexpected ttfb cells: %v", ttfb)
	}
	if ttfb[5] != "215x faster" {
		t.Fatalf("ttfb improvement: got %q want %q", ttfb[5], "215x faster")
	}

	tp := table[3]
	if tp[1] != "0.039 req/s" || tp[4] != "8.33 req/s" {
		t.Fatalf("unexpected throughput cells: %v", tp)
	}

	sr := table[4]
	if sr[1] != "68%" || sr[4] != "97%" {
		t.Fatalf("unexpected success rate cells: %v", sr)
	}
	if sr[5] != "43% more reliable" {
		t.Fatalf("success rate improvement: got %q", sr[5])
	}

	if table[5][1] != "Poor" || table[5][4] != "Outstanding" || table[5][5] != "Night & day" {
		t.Fatalf("unexpected user experience row: %v", table[5])
	}
	if table[6][1] != "Low" || table[6][4] != "Very High" || table[6][5] != "90%+ savings" {
		t.Fatalf("unexpected cost effectiveness row: %v", table[6])
	}
}

// TestWriteCSV verifies every field is quoted, rows are newline separated,
// and repeated writes produce byte-identical output.
func TestWriteCSV(t *testing.T) {
	table := BuildTable(defaultSet())
	dir := t.TempDir()

	first := filepath.Join(dir, "a.csv")
	if err := WriteCSV(table, first); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}
	second := filepath.Join(dir, "b.csv")
	if err := WriteCSV(table, second); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("expected byte-identical CSV output across runs")
	}

	lines := strings.Split(string(a), "\n")
	if len(lines) != len(table) {
		t.Fatalf("expected %d lines, got %d", len(table), len(lines))
	}
	if lines[0] != `"Metric","Plain LLM","Streaming","Cached","Combined","Best Improvement"` {
		t.Fatalf("unexpected header line: %s", lines[0])
	}
	if lines[1] != `"Total Response Time","25.8s","3.2s","0.15s","0.12s","99.5% faster"` {
		t.Fatalf("unexpected first data line: %s", lines[1])
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Fatalf("line %d is not fully quoted: %s", i, line)
		}
	}
}

// TestWriteCSVEscapesQuotes verifies embedded quotes are doubled.
func TestWriteCSVEscapesQuotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.csv")
	if err := WriteCSV([][]string{{`say "hi"`}}, path); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"say ""hi"""` {
		t.Fatalf("unexpected escaping: %s", data)
	}
}

// TestFormatSeconds verifies second formatting: one decimal, two below one
// second.
func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{ms: 25800, want: "25.8s"},
		{ms: 3200, want: "3.2s"},
		{ms: 1000, want: "1.0s"},
		{ms: 450, want: "0.45s"},
		{ms: 150, want: "0.15s"},
		{ms: 120, want: "0.12s"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.ms); got != tt.want {
			t.Fatalf("FormatSeconds(%v)=%q want %q", tt.ms, got, tt.want)
		}
	}
}

// TestFormatThroughput verifies precision tracks magnitude.
func TestFormatThroughput(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0.039, want: "0.039"},
		{v: 0.31, want: "0.31"},
		{v: 6.67, want: "6.67"},
		{v: 8.33, want: "8.33"},
	}
	for _, tt := range tests {
		if got := FormatThroughput(tt.v); got != tt.want {
			t.Fatalf("FormatThroughput(%v)=%q want %q", tt.v, got, tt.want)
		}
	}
}
