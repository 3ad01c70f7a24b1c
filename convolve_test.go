package fft

import (
	"math/cmplx"
	"testing"
)

// directConvolve computes linear convolution the naive O(n*m) way, for use
// as ground truth against the FFT-based path.
func directConvolve(x, y []complex64) []complex64 {
	out := make([]complex64, len(x)+len(y)-1)
	for i, xv := range x {
		for j, yv := range y {
			out[i+j] += xv * yv
		}
	}
	return out
}

func TestConvolveMatchesDirect(t *testing.T) {
	x := []complex64{1, 2, 3, 4, 5}
	y := []complex64{1, -1, 2}
	got, err := Convolve(x, y)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	want := directConvolve(x, y)
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if cmplx.Abs(complex128(got[i]-want[i])) > 1e-1 {
			t.Errorf("bin %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConvolveEmptyInput(t *testing.T) {
	got, err := Convolve(nil, []complex64{1, 2})
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	if got != nil {
		t.Errorf("Convolve(nil, y) = %v, want nil", got)
	}
}

func TestFastConvolveRejectsLengthMismatch(t *testing.T) {
	x := make([]complex64, 32)
	y := make([]complex64, 64)
	if err := FastConvolve(x, y); err == nil {
		t.Fatal("FastConvolve did not reject mismatched lengths")
	}
}
