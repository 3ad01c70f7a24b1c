package fft

import "testing"

func TestVectorWidthString(t *testing.T) {
	cases := map[VectorWidth]string{
		WidthScalar: "scalar",
		WidthSSE:    "SSE",
		WidthAVX:    "AVX",
	}
	for w, want := range cases {
		if got := w.String(); got != want {
			t.Errorf("VectorWidth(%d).String() = %q, want %q", w, got, want)
		}
	}
}

func TestBestVectorWidthRespectsBuildTag(t *testing.T) {
	w := bestVectorWidth()
	if !simdBuildEnabled && w != WidthScalar {
		t.Errorf("bestVectorWidth() = %v without goexperiment.simd, want WidthScalar", w)
	}
}
