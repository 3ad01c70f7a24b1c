package realcoef

import (
	"math/cmplx"
	"testing"
)

func TestBuildBoundaryValues(t *testing.T) {
	a, b := Build(16)
	if cmplx.Abs(a[0]-complex(0.5, -0.5)) > 1e-9 {
		t.Errorf("A[0] = %v, want 0.5-0.5i", a[0])
	}
	if cmplx.Abs(b[0]-complex(0.5, 0.5)) > 1e-9 {
		t.Errorf("B[0] = %v, want 0.5+0.5i", b[0])
	}
}

func TestBuildConjugateSymmetry(t *testing.T) {
	n := 32
	half := n / 2
	a, b := Build(n)
	for k := 1; k < half; k++ {
		if cmplx.Abs(a[half-k]-cmplx.Conj(a[k])) > 1e-9 {
			t.Errorf("A[%d] = %v, want conj(A[%d])=%v", half-k, a[half-k], k, cmplx.Conj(a[k]))
		}
		if cmplx.Abs(b[half-k]-cmplx.Conj(b[k])) > 1e-9 {
			t.Errorf("B[%d] = %v, want conj(B[%d])=%v", half-k, b[half-k], k, cmplx.Conj(b[k]))
		}
	}
}
