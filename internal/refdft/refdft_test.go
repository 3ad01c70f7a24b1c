package refdft

import (
	"math/cmplx"
	"testing"
)

func TestForwardKnownFourPoint(t *testing.T) {
	x := []complex128{1, 1, 1, 1}
	got := Forward(x)
	want := []complex128{4, 0, 0, 0}
	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Forward(%v)[%d] = %v, want %v", x, i, got[i], want[i])
		}
	}
}

func TestInverseUndoesForward(t *testing.T) {
	x := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	got := Inverse(Forward(x))
	for i := range x {
		if cmplx.Abs(got[i]-x[i]) > 1e-9 {
			t.Errorf("Inverse(Forward(x))[%d] = %v, want %v", i, got[i], x[i])
		}
	}
}
