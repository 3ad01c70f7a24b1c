package fft

import "testing"

func TestApplyWindowRectangularIsIdentity(t *testing.T) {
	x := []complex64{1, 2, 3, 4}
	want := []complex64{1, 2, 3, 4}
	ApplyWindow(x, Rectangular)
	for i := range x {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestApplyWindowHanningEndpointsNearZero(t *testing.T) {
	x := make([]complex64, 8)
	for i := range x {
		x[i] = 1
	}
	ApplyWindow(x, Hanning)
	if real(x[0]) > 1e-6 {
		t.Errorf("Hanning x[0] = %v, want near 0", x[0])
	}
	if real(x[len(x)-1]) > 1e-6 {
		t.Errorf("Hanning x[last] = %v, want near 0", x[len(x)-1])
	}
}

func TestPowerSpectrum(t *testing.T) {
	x := []complex64{complex(3, 4), complex(0, 1)}
	got := PowerSpectrum(x)
	want := []float32{25, 1}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("PowerSpectrum[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
