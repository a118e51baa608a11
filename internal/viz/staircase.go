package viz

import (
	"fmt"
	"strings"
)

// StaircasePlot draws the psi(x) main term and its zero-corrected sum on
// one braille canvas: the dashed identity line plus the corrected curve.
// Series must share the xs axis; w and h are in terminal cells.
func StaircasePlot(xs, main, corrected []float64, w, h int) string {
	if len(xs) < 2 || len(xs) != len(main) || len(xs) != len(corrected) {
		return ""
	}
	if w <= 0 {
		w = 70
	}
	if h <= 0 {
		h = 20
	}

	yMin, yMax := main[0], main[0]
	for i := range xs {
		for _, v := range []float64{main[i], corrected[i]} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	yRange := yMax - yMin
	if yRange == 0 {
		yRange = 1
	}
	xMin, xMax := xs[0], xs[len(xs)-1]
	xRange := xMax - xMin
	if xRange == 0 {
		xRange = 1
	}

	canvas := NewCanvas(w, h)
	subW := w*2 - 1
	subH := h*4 - 1

	toPixel := func(x, y float64) (int, int) {
		px := int(float64(subW) * (x - xMin) / xRange)
		py := subH - int(float64(subH)*(y-yMin)/yRange)
		return px, py
	}

	// Main term: dotted, every third point.
	for i := 0; i < len(xs); i += 3 {
		px, py := toPixel(xs[i], main[i])
		canvas.Set(px, py)
	}

	// Corrected staircase: continuous polyline.
	prevX, prevY := toPixel(xs[0], corrected[0])
	for i := 1; i < len(xs); i++ {
		px, py := toPixel(xs[i], corrected[i])
		canvas.DrawLine(prevX, prevY, px, py)
		prevX, prevY = px, py
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString(fmt.Sprintf("%s x ∈ [%.1f, %.1f]  y ∈ [%.1f, %.1f]\n",
		LabelStyle.Render("bounds:"), xMin, xMax, yMin, yMax))
	b.WriteString(HelpStyle.Render("dotted: main term x   solid: main term + zero correction"))
	return b.String()
}
