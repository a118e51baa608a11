package dataset

import "math"

// Sample is one row of a scan dataset: a point t on the critical line,
// the magnitude of Z there, and the gap to the previous confirmed zero.
// Spacing is only meaningful on rows the scanner marked as confirmed
// zeros; on denser sampling grids it carries whatever the producer wrote.
type Sample struct {
	T       float64
	AbsZ    float64
	Spacing float64
}

// HasSpacing reports whether the row carries a usable zero spacing.
func (s Sample) HasSpacing() bool {
	return s.Spacing > 0 && !math.IsInf(s.Spacing, 0) && !math.IsNaN(s.Spacing)
}

// Dataset is an ordered sequence of samples with strictly increasing t.
type Dataset []Sample

// Times returns the t column.
func (d Dataset) Times() []float64 {
	ts := make([]float64, len(d))
	for i, s := range d {
		ts[i] = s.T
	}
	return ts
}

// Values returns the |Z| column.
func (d Dataset) Values() []float64 {
	vs := make([]float64, len(d))
	for i, s := range d {
		vs[i] = s.AbsZ
	}
	return vs
}

// Window returns the contiguous sub-dataset with lo <= t <= hi.
// The result aliases the receiver; callers must not mutate it.
func (d Dataset) Window(lo, hi float64) Dataset {
	start, end := d.WindowBounds(lo, hi)
	return d[start:end]
}

// WindowBounds returns the half-open index range [start, end) of samples
// with lo <= t <= hi.
func (d Dataset) WindowBounds(lo, hi float64) (start, end int) {
	if hi < lo || len(d) == 0 {
		return 0, 0
	}
	for start < len(d) && d[start].T < lo {
		start++
	}
	end = start
	for end < len(d) && d[end].T <= hi {
		end++
	}
	return start, end
}

// Bounds returns the first and last t values. Zero dataset yields (0, 0).
func (d Dataset) Bounds() (lo, hi float64) {
	if len(d) == 0 {
		return 0, 0
	}
	return d[0].T, d[len(d)-1].T
}
