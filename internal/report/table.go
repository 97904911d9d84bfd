// internal/report/table.go
package report

import (
	"fmt"
	"strings"

	"github.com/perflab/llmreport/internal/metrics"
	"github.com/perflab/llmreport/internal/util"
)

// columnLabels is the summary table header. The order of the technique
// columns matches metrics.Order.
var columnLabels = []string{"Metric", "Plain LLM", "Streaming", "Cached", "Combined", "Best Improvement"}

// userExperience and costEffectiveness are fixed qualitative labels per
// technique. They are descriptive, not derived from the measured data.
var (
	userExperience    = map[metrics.Technique]string{metrics.PlainLLM: "Poor", metrics.Streaming: "Good", metrics.Cached: "Excellent", metrics.Combined: "Outstanding"}
	costEffectiveness = map[metrics.Technique]string{metrics.PlainLLM: "Low", metrics.Streaming: "Medium", metrics.Cached: "High", metrics.Combined: "Very High"}
)

// BuildTable renders the technique metrics into the summary table: a header
// row followed by six metric rows. The same rows feed both the chart's table
// panel and the CSV writer.
func BuildTable(set metrics.Set) [][]string {
	baseline := set[metrics.PlainLLM]

	bestRT := baseline.ResponseTime
	bestTTFB := baseline.TTFB
	bestTP := baseline.Throughput
	bestSR := baseline.SuccessRate
	for _, t := range metrics.Order {
		m := set[t]
		if m.ResponseTime < bestRT {
			bestRT = m.ResponseTime
		}
		if m.TTFB < bestTTFB {
			bestTTFB = m.TTFB
		}
		if m.Throughput > bestTP {
			bestTP = m.Throughput
		}
		if m.SuccessRate > bestSR {
			bestSR = m.SuccessRate
		}
	}

	rows := [][]string{append([]string(nil), columnLabels...)}

	rtRow := []string{"Total Response Time"}
	ttfbRow := []string{"Time to First Byte"}
	tpRow := []string{"Throughput"}
	srRow := []string{"Success Rate"}
	uxRow := []string{"User Experience"}
	costRow := []string{"Cost Effectiveness"}

	for _, t := range metrics.Order {
		m := set[t]
		rtRow = append(rtRow, FormatSeconds(m.ResponseTime))
		ttfbRow = append(ttfbRow, FormatSeconds(m.TTFB))
		tpRow = append(tpRow, FormatThroughput(m.Throughput)+" req/s")
		srRow = append(srRow, fmt.Sprintf("%.0f%%", m.SuccessRate))
		uxRow = append(uxRow, userExperience[t])
		costRow = append(costRow, costEffectiveness[t])
	}

	rtRow = append(rtRow, fmt.Sprintf("%.1f%% faster", PercentImprovement(baseline.ResponseTime, bestRT)))
	ttfbRow = append(ttfbRow, fmt.Sprintf("%.0fx faster", ratio(baseline.TTFB, bestTTFB)))
	tpRow = append(tpRow, fmt.Sprintf("%.0fx higher", ratio(bestTP, baseline.Throughput)))
	srRow = append(srRow, fmt.Sprintf("%.0f%% more reliable", relativeGain(baseline.SuccessRate, bestSR)))
	uxRow = append(uxRow, "Night & day")
	costRow = append(costRow, "90%+ savings")

	rows = append(rows, rtRow, ttfbRow, tpRow, srRow, uxRow, costRow)
	return rows
}

// WriteCSV serializes the table with every field quoted, one line per row,
// header included. The output is deterministic for a given table.
func WriteCSV(table [][]string, path string) error {
	var b strings.Builder
	for i, row := range table {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}

	if err := util.WriteFile(path, []byte(b.String())); err != nil {
		return fmt.Errorf("unable to write summary table %s: %w", path, err)
	}
	return nil
}

// FormatSeconds renders a millisecond duration in seconds: one decimal
// place, or two for sub-second values.
func FormatSeconds(ms float64) string {
	s := ms / 1000
	if s < 1 {
		return fmt.Sprintf("%.2fs", s)
	}
	return fmt.Sprintf("%.1fs", s)
}

// FormatThroughput renders requests per second with precision suited to the
// magnitude: three decimals below 0.1, otherwise two.
func FormatThroughput(v float64) string {
	if v < 0.1 {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// PercentImprovement is the relative improvement of value over baseline,
// as a percentage of the baseline.
func PercentImprovement(baseline, value float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (baseline - value) / baseline * 100
}

// relativeGain is the relative increase of value over baseline, as a
// percentage of the baseline.
func relativeGain(baseline, value float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / baseline * 100
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
