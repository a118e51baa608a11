package export

import (
	"fmt"
	"strings"

	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
)

// ChartSVG renders the |Z| curve as an SVG polyline with circle markers
// at valleys and mountains. Bounds get 10% padding on each side so
// markers near the extremes stay inside the viewport.
func ChartSVG(ds dataset.Dataset, report extrema.Report, width, height int) string {
	if len(ds) < 2 {
		return ""
	}

	minX, maxX := ds.Bounds()
	minY, maxY := ds[0].AbsZ, ds[0].AbsZ
	for _, s := range ds {
		if s.AbsZ < minY {
			minY = s.AbsZ
		}
		if s.AbsZ > maxY {
			maxY = s.AbsZ
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toX := func(t float64) float64 { return (t - minX) / rangeX * float64(width) }
	toY := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i, s := range ds {
		x := toX(s.T)
		y := toY(s.AbsZ)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	writeMarkers := func(points []extrema.Point, fill string) {
		if len(points) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))
		for _, p := range points {
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\"/>\n",
				toX(p.Sample.T), toY(p.Sample.AbsZ)))
		}
		sb.WriteString("</g>\n")
	}
	writeMarkers(report.Valleys(), "#00ff88")
	writeMarkers(report.Mountains(), "#ff8844")

	sb.WriteString("</svg>")
	return sb.String()
}
