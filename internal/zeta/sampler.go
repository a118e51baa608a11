package zeta

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"valleyviz/internal/dataset"
)

// ErrCanceled indicates sampling was interrupted before completion.
var ErrCanceled = errors.New("zeta: sampling canceled by context")

// Sampler produces a magnitude dataset on the N -> sqrt(N - m^2) grid,
// the same grid the scan engine exports. Spacing columns are left zero;
// callers annotate them after valley detection.
type Sampler struct {
	Samples int
	Mean    float64
	Workers int
}

// Run evaluates |Z| at every grid point, fanning the index range out
// across workers and reassembling results in grid order.
func (s Sampler) Run(ctx context.Context) (dataset.Dataset, error) {
	if s.Samples <= 0 {
		return dataset.Dataset{}, nil
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > s.Samples {
		workers = s.Samples
	}

	out := make([]dataset.Sample, s.Samples)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < s.Samples; i += workers {
				if ctx.Err() != nil {
					errs[worker] = ErrCanceled
					return
				}
				t := TFromN(float64(i), s.Mean)
				out[i] = dataset.Sample{T: t, AbsZ: AbsZ(t)}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// The n = 0 grid point collapses to t = 0 whenever m > 0; drop leading
	// duplicates so the dataset keeps strictly increasing t.
	ds := dataset.Dataset(out)
	for len(ds) > 1 && ds[1].T <= ds[0].T {
		ds = ds[1:]
	}
	return ds, nil
}
