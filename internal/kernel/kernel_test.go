package kernel

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/okfft/splitfft/internal/offsets"
	"github.com/okfft/splitfft/internal/refdft"
	"github.com/okfft/splitfft/internal/twiddle"
)

func toC64(x []complex128) []complex64 {
	y := make([]complex64, len(x))
	for i, v := range x {
		y[i] = complex64(v)
	}
	return y
}

func toC128(x []complex64) []complex128 {
	y := make([]complex128, len(x))
	for i, v := range x {
		y[i] = complex128(v)
	}
	return y
}

func buildTestProgram(n int) *Program {
	offs := offsets.Build(n)
	is := offsets.Indices(n)
	table := twiddle.Generate(n / 2)
	packed := twiddle.Pack(table, n)
	return Build(n, offs, is, packed.WS, packed.Is)
}

func TestLeafTransformMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 4, 8, 16} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(r.Float64()*2-1, r.Float64()*2-1)
		}
		want := refdft.Forward(x)
		got := toC128(leafTransform(toC64(x), -1.0))
		for i := range want {
			if cmplx.Abs(got[i]-want[i]) > 1e-2 {
				t.Errorf("n=%d k=%d: got %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestProgramBuildRejectsShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a bad offset table")
		}
	}()
	packed := twiddle.Pack(twiddle.Generate(16), 32)
	Build(32, []int{0, 1}, offsets.Indices(32), packed.WS, packed.Is)
}

func TestProgramRunMatchesReferenceForward(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{32, 64, 128, 256, 512} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(r.Float64()*2-1, r.Float64()*2-1)
		}
		want := refdft.Forward(x)
		prog := buildTestProgram(n)
		got := toC128(prog.Run(toC64(x), true))
		for i := range want {
			if cmplx.Abs(got[i]-want[i]) > 1e-2 {
				t.Errorf("n=%d k=%d: got %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestProgramRunMatchesReferenceInverse(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{32, 64, 128, 256} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(r.Float64()*2-1, r.Float64()*2-1)
		}
		want128 := refdft.Inverse(x)
		prog := buildTestProgram(n)
		got := prog.Run(toC64(x), false)
		ApplyScale(got, n)
		got128 := toC128(got)
		for i := range want128 {
			if cmplx.Abs(got128[i]-want128[i]) > 1e-2 {
				t.Errorf("n=%d k=%d: got %v, want %v", n, i, got128[i], want128[i])
			}
		}
	}
}

func TestProgramRunRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{32, 256, 1024} {
		x := make([]complex64, n)
		for i := range x {
			x[i] = complex(float32(r.Float64()*2-1), float32(r.Float64()*2-1))
		}
		orig := append([]complex64(nil), x...)
		prog := buildTestProgram(n)
		fwd := prog.Run(x, true)
		back := prog.Run(fwd, false)
		ApplyScale(back, n)
		for i := range orig {
			if cmplx.Abs(complex128(back[i])-complex128(orig[i])) > 1e-2 {
				t.Errorf("n=%d i=%d: round trip got %v, want %v", n, i, back[i], orig[i])
			}
		}
	}
}
