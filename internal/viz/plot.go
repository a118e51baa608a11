package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
)

// PlotOptions controls terminal chart rendering.
type PlotOptions struct {
	Width   int
	Height  int
	Markers bool
	Caption string
}

// DefaultPlotOptions mirrors an 80-column terminal.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 15, Markers: true}
}

// PlotDataset renders the |Z| curve with valley and mountain markers
// overlaid on the graph, followed by a legend line. Datasets wider than
// the plot are downsampled by stride; markers land in the column their
// sample falls into.
func PlotDataset(ds dataset.Dataset, report extrema.Report, opts PlotOptions) string {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}
	if len(ds) == 0 {
		return ""
	}

	stride := (len(ds) + opts.Width - 1) / opts.Width
	series := make([]float64, 0, opts.Width)
	for i := 0; i < len(ds); i += stride {
		series = append(series, ds[i].AbsZ)
	}

	graphOpts := []asciigraph.Option{asciigraph.Height(opts.Height)}
	if opts.Caption != "" {
		graphOpts = append(graphOpts, asciigraph.Caption(opts.Caption))
	}
	graph := asciigraph.Plot(series, graphOpts...)

	if opts.Markers {
		graph = overlayMarkers(graph, series, report.Points, stride, opts.Height)
	}

	lo, hi := ds.Bounds()
	legend := fmt.Sprintf("%s t ∈ [%.3f, %.3f]   %s %d valleys   %s %d mountains",
		LabelStyle.Render("range:"), lo, hi,
		ValleyStyle.Render(string(ValleyMarker)), len(report.Valleys()),
		MountainStyle.Render(string(MountainMarker)), len(report.Mountains()),
	)
	return graph + "\n\n" + legend
}

// overlayMarkers stamps extremum glyphs onto the rendered graph. Marker
// rows follow the plotted (downsampled) column value so glyphs sit on the
// curve itself.
func overlayMarkers(graph string, series []float64, points []extrema.Point, stride, height int) string {
	lines := strings.Split(graph, "\n")
	rows := make([][]rune, len(lines))
	axisAt := make([]int, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		axisAt[i] = -1
		for j, r := range rows[i] {
			if r == '┤' || r == '┼' {
				axisAt[i] = j
				break
			}
		}
	}

	min, max := series[0], series[0]
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	interval := max - min

	marks := make(map[[2]int]extrema.Kind)
	for _, p := range points {
		col := p.Index / stride
		if col >= len(series) {
			continue
		}
		row := height
		if interval > 0 {
			row = height - int(math.Round((series[col]-min)/interval*float64(height)))
		}
		if row < 0 || row >= len(lines) || axisAt[row] < 0 {
			continue
		}
		marks[[2]int{row, col}] = p.Kind

		// Rendered lines stop at the last plotted rune; pad so the
		// marker position exists.
		for need := axisAt[row] + 1 + col; len(rows[row]) <= need; {
			rows[row] = append(rows[row], ' ')
		}
	}

	var b strings.Builder
	for i, runes := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, r := range runes {
			if axisAt[i] >= 0 && j > axisAt[i] {
				if kind, ok := marks[[2]int{i, j - axisAt[i] - 1}]; ok {
					if kind == extrema.Valley {
						b.WriteString(ValleyStyle.Render(string(ValleyMarker)))
					} else {
						b.WriteString(MountainStyle.Render(string(MountainMarker)))
					}
					continue
				}
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
