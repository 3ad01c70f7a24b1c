package fft

import "fmt"

// Convolve computes the linear convolution of x and y via zero-padded
// FFTs, returning a freshly allocated result of length len(x)+len(y)-1.
// x and y are not modified.
func Convolve(x, y []complex64) ([]complex64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}
	outLen := len(x) + len(y) - 1
	n := NextPow2(outLen)
	if n < minComplexSize {
		n = minComplexSize
	}
	xp := ZeroPad(x, n)
	yp := ZeroPad(y, n)
	if err := FastConvolve(xp, yp); err != nil {
		return nil, err
	}
	return xp[:outLen], nil
}

// FastConvolve computes the circular convolution of x and y in place,
// overwriting x with the result and zeroing y. len(x) and len(y) must be
// equal and a power of two >= 32 (the engine's minimum complex size);
// callers after a linear convolution via Convolve must zero-pad to at
// least len(x)+len(y)-1 first to avoid wraparound between the tail and
// head of the result.
func FastConvolve(x, y []complex64) error {
	n := len(x)
	if n != len(y) {
		return fmt.Errorf("fft: FastConvolve: len(x)=%d != len(y)=%d", n, len(y))
	}
	fwd, err := CreatePlan(n, Forward)
	if err != nil {
		return fmt.Errorf("fft: FastConvolve: %w", err)
	}
	inv, err := CreatePlan(n, Inverse)
	if err != nil {
		return fmt.Errorf("fft: FastConvolve: %w", err)
	}
	fwd.Execute(x)
	fwd.Execute(y)
	for i := range x {
		x[i] *= y[i]
		y[i] = 0
	}
	inv.Execute(x)
	return nil
}
