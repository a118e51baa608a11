package extrema

import "valleyviz/internal/dataset"

// AnnotateSpacings returns a copy of the dataset with each valley row's
// spacing set to the gap from the previous valley, matching the scan
// engine's convention for confirmed zeros. The first valley keeps a zero
// spacing since it has no predecessor.
func AnnotateSpacings(ds dataset.Dataset, r Report) dataset.Dataset {
	out := make(dataset.Dataset, len(ds))
	copy(out, ds)

	prev := -1.0
	for _, v := range r.Valleys() {
		if prev >= 0 {
			out[v.Index].Spacing = v.Sample.T - prev
		}
		prev = v.Sample.T
	}
	return out
}
