package analysis

import (
	"math"

	"valleyviz/internal/extrema"
)

// Stats summarizes the gaps between consecutive confirmed zeros.
type Stats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// SpacingStats computes spacing statistics over the given valley points,
// skipping rows without a usable spacing (the first zero, or rows the
// producer left unannotated).
func SpacingStats(points []extrema.Point) Stats {
	gaps := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Sample.HasSpacing() {
			gaps = append(gaps, p.Sample.Spacing)
		}
	}
	if len(gaps) == 0 {
		return Stats{}
	}

	st := Stats{Count: len(gaps), Min: gaps[0], Max: gaps[0]}
	sum := 0.0
	for _, g := range gaps {
		sum += g
		if g < st.Min {
			st.Min = g
		}
		if g > st.Max {
			st.Max = g
		}
	}
	st.Mean = sum / float64(len(gaps))

	if len(gaps) > 1 {
		ss := 0.0
		for _, g := range gaps {
			d := g - st.Mean
			ss += d * d
		}
		st.StdDev = math.Sqrt(ss / float64(len(gaps)-1))
	}
	return st
}
