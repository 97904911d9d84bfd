// internal/report/summary.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/perflab/llmreport/internal/metrics"
	"github.com/perflab/llmreport/internal/util"
)

// printTechniques lists each technique's derived metrics on the terminal.
func printTechniques(out io.Writer, set metrics.Set) {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	metricStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	fmt.Fprintln(out)
	for i, t := range metrics.Order {
		m := set[t]
		line := fmt.Sprintf("response %s  ttfb %s  success %.0f%%  throughput %s req/s",
			FormatSeconds(m.ResponseTime),
			FormatSeconds(m.TTFB),
			m.SuccessRate,
			FormatThroughput(m.Throughput),
		)
		fmt.Fprintf(out, "%s %s\n",
			nameStyle.Render(util.PadRunes(displayLabels[i]+":", 11)),
			metricStyle.Render(line),
		)
	}
}
