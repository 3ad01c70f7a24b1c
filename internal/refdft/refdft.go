// Package refdft computes a direct, unoptimized O(n^2) DFT for use as a
// ground truth in tests, grounded in the same math/cmplx the wider pack
// reaches for when it needs a reference transform (andewx-gofft/window.go,
// the gonum fftpack reference in other_examples). It is intentionally
// independent of the split-radix recursion under test: a shared bug in
// the fast path would not show up if this shared the same code.
package refdft

import (
	"math"
	"math/cmplx"
)

// Forward returns X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N), unnormalized.
func Forward(x []complex128) []complex128 {
	return dft(x, -1)
}

// Inverse returns x[n] = (1/N) * sum_k X[k] * exp(+2*pi*i*k*n/N).
func Inverse(x []complex128) []complex128 {
	y := dft(x, +1)
	n := complex(float64(len(x)), 0)
	for i := range y {
		y[i] /= n
	}
	return y
}

func dft(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			theta := sign * 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, theta))
		}
		out[k] = sum
	}
	return out
}
