package zeta

import (
	"math"
	"math/cmplx"
)

// borweinN is the series length for the eta-accelerated evaluator.
// Error grows like exp(pi*t/2)/(3+sqrt(8))^n, so 64 terms hold double
// precision up to roughly t = 40; beyond that Z switches to Riemann-Siegel.
const borweinN = 64

// rsCutover is the t above which the Riemann-Siegel path is used.
const rsCutover = 40.0

var borweinD = computeBorweinD(borweinN)

// Zeta evaluates the Riemann zeta function at s in double precision using
// Borwein's alternating-series acceleration of the Dirichlet eta function.
// Accurate for moderate |Im s|; see Z for evaluation high on the critical line.
func Zeta(s complex128) complex128 {
	var sum complex128
	sign := 1.0
	for k := 0; k < borweinN; k++ {
		term := complex(sign*(borweinD[k]-borweinD[borweinN]), 0) *
			cmplx.Pow(complex(float64(k+1), 0), -s)
		sum += term
		sign = -sign
	}
	denom := complex(borweinD[borweinN], 0) * (1 - cmplx.Pow(2, 1-s))
	return -sum / denom
}

// computeBorweinD builds the Chebyshev-derived coefficients
// d_k = n * sum_{i<=k} (n+i-1)! 4^i / ((n-i)! (2i)!), via the term ratio
// to stay inside float64 range.
func computeBorweinD(n int) []float64 {
	d := make([]float64, n+1)
	term := 1.0 / float64(n) // i = 0
	acc := term
	d[0] = float64(n) * acc
	for i := 1; i <= n; i++ {
		term *= 4.0 * float64(n+i-1) * float64(n-i+1) / (float64(2*i) * float64(2*i-1))
		acc += term
		d[i] = float64(n) * acc
	}
	return d
}

// AbsZ returns |zeta(1/2 + it)|, the magnitude curve the scanner samples.
func AbsZ(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t < rsCutover {
		return cmplx.Abs(Zeta(complex(0.5, t)))
	}
	return math.Abs(riemannSiegelZ(t))
}

// Z evaluates the real-valued Riemann-Siegel Z function at t, whose
// magnitude equals |zeta(1/2+it)|. Low t uses the eta series directly;
// higher t uses the Riemann-Siegel main sum with the first remainder term.
func Z(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t < rsCutover {
		z := Zeta(complex(0.5, t))
		// Z(t) = e^{i theta(t)} zeta(1/2+it) is real; recover its sign.
		rotated := cmplx.Exp(complex(0, theta(t))) * z
		return real(rotated)
	}
	return riemannSiegelZ(t)
}

// theta is the Riemann-Siegel theta function, asymptotic expansion.
func theta(t float64) float64 {
	if t == 0 {
		return 0
	}
	return t/2*math.Log(t/(2*math.Pi)) - t/2 - math.Pi/8 +
		1/(48*t) + 7/(5760*t*t*t)
}

// riemannSiegelZ evaluates the main sum plus the leading correction term.
func riemannSiegelZ(t float64) float64 {
	a := math.Sqrt(t / (2 * math.Pi))
	n := int(math.Floor(a))
	th := theta(t)

	sum := 0.0
	for k := 1; k <= n; k++ {
		sum += math.Cos(th-t*math.Log(float64(k))) / math.Sqrt(float64(k))
	}
	sum *= 2

	// Leading remainder term: (-1)^{N+1} (t/2pi)^{-1/4} Psi(p).
	p := a - float64(n)
	c0 := math.Cos(2*math.Pi*(p*p-p-1.0/16.0)) / math.Cos(2*math.Pi*p)
	sign := 1.0
	if n%2 == 0 {
		sign = -1.0
	}
	return sum + sign*c0/math.Sqrt(a)
}

// TFromN maps a natural-number index N to its critical-line ordinate
// t = sqrt(N - m^2), the sampling transform used by the scan engine with
// mean m = 1/2. Indices below m^2 map to t = 0.
func TFromN(n, m float64) float64 {
	d := n - m*m
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}
