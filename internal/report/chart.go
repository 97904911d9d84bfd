// internal/report/chart.go
package report

import (
	"fmt"
	"image/color"
	"os"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/perflab/llmreport/internal/metrics"
)

const (
	chartWidth  = 20 * vg.Inch
	chartHeight = 12 * vg.Inch
	chartDPI    = 300
)

// techniqueColors are the per-technique bar colors, aligned with
// metrics.Order.
var techniqueColors = []color.RGBA{
	{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF},
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF},
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
}

var (
	headerFill  = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF}
	gridGray    = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	improvement = color.RGBA{R: 0xE6, G: 0x51, B: 0x00, A: 0xFF}
)

// displayLabels and shortLabels name the techniques on the two bar panels.
var (
	displayLabels = []string{"Plain LLM", "Streaming", "Cached", "Combined"}
	shortLabels   = []string{"Plain", "Stream", "Cache", "Combined"}
)

// RenderChart draws the comparison figure — response-time bars, throughput
// panel, and summary table — and writes it as a single PNG. Unlike the
// loader, rendering has no recovery path: any failure is returned to the
// caller and ends the run.
func RenderChart(set metrics.Set, table [][]string, path, timestamp string) error {
	img := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(chartDPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	pad := vg.Points(18)

	// Top band: main chart on the left two thirds, throughput on the right.
	mainC := draw.Crop(dc, pad, -w/3-pad, h*2/5+pad, -pad)
	tpC := draw.Crop(dc, w*2/3+pad, -pad, h*2/5+pad, -pad)
	tableC := draw.Crop(dc, pad, -pad, pad, -h*3/5-pad)

	mainPlot, err := responseTimePlot(set, timestamp)
	if err != nil {
		return fmt.Errorf("failed building response time chart: %w", err)
	}
	mainPlot.Draw(mainC)

	tpPlot, err := throughputPlot(set)
	if err != nil {
		return fmt.Errorf("failed building throughput panel: %w", err)
	}
	tpPlot.Draw(tpC)

	tablePlot, err := summaryTablePlot(table)
	if err != nil {
		return fmt.Errorf("failed building table panel: %w", err)
	}
	tablePlot.Draw(tableC)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create chart file %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("unable to write chart file %s: %w", path, err)
	}
	return nil
}

// responseTimePlot builds the main bar chart: total response time per
// technique in seconds, annotated with the literal value and, for every
// non-baseline technique, its improvement over the baseline.
func responseTimePlot(set metrics.Set, timestamp string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "LLM Performance Comparison: Plain vs Optimized Techniques"
	if timestamp != "" {
		p.Title.Text += "\n(benchmarked " + timestamp + ")"
	}
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = "Implementation Approach"
	p.Y.Label.Text = "Response Time (seconds)"
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)

	baseline := set[metrics.PlainLLM].ResponseTime
	maxSeconds := 0.0

	var valueXYs, improveXYs plotter.XYs
	var valueTexts, improveTexts []string

	for i, t := range metrics.Order {
		seconds := set[t].ResponseTime / 1000
		if seconds > maxSeconds {
			maxSeconds = seconds
		}

		bars, err := plotter.NewBarChart(plotter.Values{seconds}, vg.Points(48))
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(i)
		bars.Color = techniqueColors[i]
		bars.LineStyle.Width = 0
		p.Add(bars)

		valueXYs = append(valueXYs, plotter.XY{X: float64(i), Y: seconds})
		valueTexts = append(valueTexts, fmt.Sprintf("%.2fs", seconds))

		if t != metrics.PlainLLM {
			gain := PercentImprovement(baseline, set[t].ResponseTime)
			if gain > 0 {
				improveXYs = append(improveXYs, plotter.XY{X: float64(i), Y: seconds})
				improveTexts = append(improveTexts, fmt.Sprintf("%.1f%% improvement", gain))
			}
		}
	}

	values, err := annotationLabels(valueXYs, valueTexts, vg.Points(11), vg.Points(4), color.Black)
	if err != nil {
		return nil, err
	}
	p.Add(values)

	improvements, err := annotationLabels(improveXYs, improveTexts, vg.Points(10), vg.Points(22), improvement)
	if err != nil {
		return nil, err
	}
	p.Add(improvements)

	p.NominalX(displayLabels...)
	p.X.Min, p.X.Max = -0.5, float64(len(metrics.Order))-0.5
	p.Y.Min = 0
	p.Y.Max = maxSeconds * 1.2
	return p, nil
}

// throughputPlot builds the secondary panel: requests per second per
// technique, annotated with the literal value.
func throughputPlot(set metrics.Set) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Throughput\n(Requests/Second)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Req/Sec"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	maxTP := 0.0
	var labelXYs plotter.XYs
	var labelTexts []string

	for i, t := range metrics.Order {
		tp := set[t].Throughput
		if tp > maxTP {
			maxTP = tp
		}

		bars, err := plotter.NewBarChart(plotter.Values{tp}, vg.Points(32))
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(i)
		bars.Color = techniqueColors[i]
		bars.LineStyle.Width = 0
		p.Add(bars)

		labelXYs = append(labelXYs, plotter.XY{X: float64(i), Y: tp})
		labelTexts = append(labelTexts, FormatThroughput(tp))
	}

	labels, err := annotationLabels(labelXYs, labelTexts, vg.Points(10), vg.Points(3), color.Black)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.NominalX(shortLabels...)
	p.X.Min, p.X.Max = -0.5, float64(len(metrics.Order))-0.5
	p.Y.Min = 0
	p.Y.Max = maxTP * 1.2
	return p, nil
}

// summaryTablePlot renders the summary table rows as a hidden-axis plot:
// a filled header band, a cell grid, and centered cell text. The trailing
// improvement column is wider than the technique columns, matching the
// rendered figure's proportions.
func summaryTablePlot(table [][]string) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	nRows := len(table)
	nCols := len(table[0])

	// Column boundaries in x units; the last column gets extra room.
	bounds := make([]float64, nCols+1)
	for j := 1; j <= nCols; j++ {
		width := 1.0
		if j == nCols {
			width = 1.6
		}
		bounds[j] = bounds[j-1] + width
	}
	totalWidth := bounds[nCols]

	header, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: float64(nRows - 1)},
		{X: totalWidth, Y: float64(nRows - 1)},
		{X: totalWidth, Y: float64(nRows)},
		{X: 0, Y: float64(nRows)},
	})
	if err != nil {
		return nil, err
	}
	header.Color = headerFill
	header.LineStyle.Width = 0
	p.Add(header)

	for i := 0; i <= nRows; i++ {
		line, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: float64(i)},
			{X: totalWidth, Y: float64(i)},
		})
		if err != nil {
			return nil, err
		}
		line.Color = gridGray
		line.Width = vg.Points(0.5)
		p.Add(line)
	}
	for j := 0; j <= nCols; j++ {
		line, err := plotter.NewLine(plotter.XYs{
			{X: bounds[j], Y: 0},
			{X: bounds[j], Y: float64(nRows)},
		})
		if err != nil {
			return nil, err
		}
		line.Color = gridGray
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	for i, row := range table {
		for j, cell := range row {
			xy := plotter.XY{
				X: (bounds[j] + bounds[j+1]) / 2,
				Y: float64(nRows-i) - 0.5,
			}
			labels, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    plotter.XYs{xy},
				Labels: []string{cell},
			})
			if err != nil {
				return nil, err
			}
			style := &labels.TextStyle[0]
			style.XAlign = text.XCenter
			style.YAlign = text.YCenter
			style.Font.Size = vg.Points(11)
			switch {
			case i == 0:
				style.Color = color.White
				style.Font.Weight = xfont.WeightBold
			case j == nCols-1:
				style.Color = improvement
				style.Font.Weight = xfont.WeightBold
			default:
				style.Color = color.Black
			}
			p.Add(labels)
		}
	}

	p.X.Min, p.X.Max = 0, totalWidth
	p.Y.Min, p.Y.Max = 0, float64(nRows)
	return p, nil
}

// annotationLabels builds a centered label set hovering above bar tops.
func annotationLabels(xys plotter.XYs, texts []string, size, offset vg.Length, clr color.Color) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{Y: offset}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = size
		labels.TextStyle[i].Color = clr
		labels.TextStyle[i].Font.Weight = xfont.WeightBold
	}
	return labels, nil
}
