package dataset

import (
	"math"
	"testing"
)

func makeDataset() Dataset {
	return Dataset{
		{T: 1.0, AbsZ: 3.0},
		{T: 2.0, AbsZ: 1.0},
		{T: 3.0, AbsZ: 2.0},
		{T: 4.0, AbsZ: 0.5},
		{T: 5.0, AbsZ: 4.0},
	}
}

func TestWindow(t *testing.T) {
	ds := makeDataset()

	tests := []struct {
		lo, hi   float64
		expected int
		firstT   float64
	}{
		{1.0, 5.0, 5, 1.0},
		{2.0, 4.0, 3, 2.0},
		{2.5, 4.5, 2, 3.0},
		{0.0, 0.5, 0, 0},
		{5.0, 1.0, 0, 0},
	}

	for _, tt := range tests {
		win := ds.Window(tt.lo, tt.hi)
		if len(win) != tt.expected {
			t.Errorf("Window(%v, %v): expected %d samples, got %d", tt.lo, tt.hi, tt.expected, len(win))
			continue
		}
		if tt.expected > 0 && win[0].T != tt.firstT {
			t.Errorf("Window(%v, %v): expected first t %v, got %v", tt.lo, tt.hi, tt.firstT, win[0].T)
		}
	}
}

func TestWindowBounds_Contiguous(t *testing.T) {
	ds := makeDataset()
	start, end := ds.WindowBounds(2.0, 4.0)
	if start != 1 || end != 4 {
		t.Errorf("expected [1, 4), got [%d, %d)", start, end)
	}
}

func TestBounds(t *testing.T) {
	ds := makeDataset()
	lo, hi := ds.Bounds()
	if lo != 1.0 || hi != 5.0 {
		t.Errorf("expected bounds [1, 5], got [%v, %v]", lo, hi)
	}

	lo, hi = Dataset{}.Bounds()
	if lo != 0 || hi != 0 {
		t.Errorf("empty dataset should have zero bounds, got [%v, %v]", lo, hi)
	}
}

func TestHasSpacing(t *testing.T) {
	tests := []struct {
		spacing  float64
		expected bool
	}{
		{1.5, true},
		{0.0, false},
		{-1.0, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		s := Sample{Spacing: tt.spacing}
		if s.HasSpacing() != tt.expected {
			t.Errorf("HasSpacing(%v): expected %v", tt.spacing, tt.expected)
		}
	}
}

func TestTimesValues(t *testing.T) {
	ds := makeDataset()
	ts := ds.Times()
	vs := ds.Values()
	if len(ts) != len(ds) || len(vs) != len(ds) {
		t.Fatalf("column lengths mismatch: %d, %d", len(ts), len(vs))
	}
	if ts[2] != 3.0 || vs[2] != 2.0 {
		t.Errorf("expected (3.0, 2.0) at index 2, got (%v, %v)", ts[2], vs[2])
	}
}
