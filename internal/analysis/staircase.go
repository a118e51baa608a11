package analysis

import "math"

// staircase correction chunk size; bounds the gamma block held per pass.
const chunkSize = 2000

// StaircaseCorrection evaluates the explicit-formula correction to the
// Chebyshev psi(x) main term from conjugate-paired zeros at ordinates
// gammas. Each gamma contributes, in real form,
//
//	-sqrt(x) * (cos(g*log x) + 2g*sin(g*log x)) / (g^2 + 1/4)
//
// summed in chunks over the gamma list. The returned slice is aligned
// with xs; with no gammas it is all zeros.
func StaircaseCorrection(gammas, xs []float64) []float64 {
	corr := make([]float64, len(xs))

	logx := make([]float64, len(xs))
	sqrtx := make([]float64, len(xs))
	for i, x := range xs {
		logx[i] = math.Log(x)
		sqrtx[i] = math.Sqrt(x)
	}

	for start := 0; start < len(gammas); start += chunkSize {
		end := start + chunkSize
		if end > len(gammas) {
			end = len(gammas)
		}
		for _, g := range gammas[start:end] {
			d := g*g + 0.25
			for i := range xs {
				th := g * logx[i]
				corr[i] -= sqrtx[i] * (math.Cos(th) + 2*g*math.Sin(th)) / d
			}
		}
	}
	return corr
}

// Linspace returns n evenly spaced points over [lo, hi] inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}
