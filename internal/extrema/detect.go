package extrema

import (
	"valleyviz/internal/dataset"
)

// Kind classifies an extremum of the |Z| curve.
type Kind int

const (
	// Valley is a local minimum, the scanner's zero candidate.
	Valley Kind = iota
	// Mountain is a local maximum, used to bracket valleys.
	Mountain
)

func (k Kind) String() string {
	if k == Valley {
		return "valley"
	}
	return "mountain"
}

// Point is one detected extremum.
type Point struct {
	Index  int
	Sample dataset.Sample
	Kind   Kind
}

// Report holds all extrema of a dataset in index order.
type Report struct {
	Points []Point
}

// Detect scans the dataset for strict local extrema of |Z|. An interior
// index i is a mountain when absZ[i] beats both neighbors strictly, and a
// valley when both neighbors beat it strictly. Boundary indices are never
// classified, and plateaus (equal neighbors) classify nothing. Datasets
// with fewer than three samples produce an empty report.
func Detect(ds dataset.Dataset) (Report, error) {
	if len(ds) == 0 {
		return Report{}, dataset.ErrEmptyDataset
	}

	var points []Point
	for i := 1; i < len(ds)-1; i++ {
		prev, cur, next := ds[i-1].AbsZ, ds[i].AbsZ, ds[i+1].AbsZ
		switch {
		case cur > prev && cur > next:
			points = append(points, Point{Index: i, Sample: ds[i], Kind: Mountain})
		case cur < prev && cur < next:
			points = append(points, Point{Index: i, Sample: ds[i], Kind: Valley})
		}
	}

	return Report{Points: points}, nil
}

// Valleys returns the valley points in index order.
func (r Report) Valleys() []Point {
	return r.filter(Valley)
}

// Mountains returns the mountain points in index order.
func (r Report) Mountains() []Point {
	return r.filter(Mountain)
}

func (r Report) filter(k Kind) []Point {
	out := make([]Point, 0, len(r.Points))
	for _, p := range r.Points {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// InWindow returns the points whose t lies in [lo, hi].
func (r Report) InWindow(lo, hi float64) []Point {
	out := make([]Point, 0, len(r.Points))
	for _, p := range r.Points {
		if p.Sample.T >= lo && p.Sample.T <= hi {
			out = append(out, p)
		}
	}
	return out
}

// ConfirmedValleys returns the valleys whose row carries a usable zero
// spacing, i.e. the rows the scan engine marked as confirmed zeros.
func ConfirmedValleys(r Report) []Point {
	out := make([]Point, 0)
	for _, p := range r.Valleys() {
		if p.Sample.HasSpacing() {
			out = append(out, p)
		}
	}
	return out
}
