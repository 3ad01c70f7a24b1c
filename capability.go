package fft

import "golang.org/x/sys/cpu"

// VectorWidth identifies the SIMD lane width a Plan was built to drive.
type VectorWidth int

const (
	// WidthScalar means no vector instructions are used; every butterfly
	// runs through the portable Go combine step.
	WidthScalar VectorWidth = iota
	// WidthSSE packs four float32 lanes, two complex values (128-bit).
	WidthSSE
	// WidthAVX packs eight float32 lanes, four complex values (256-bit).
	WidthAVX
)

func (w VectorWidth) String() string {
	switch w {
	case WidthSSE:
		return "SSE"
	case WidthAVX:
		return "AVX"
	default:
		return "scalar"
	}
}

// hasAVX2 reports whether the running CPU provides the AVX2 instruction
// set. This is the module's stand-in for the original library's CPUID
// leaf 1 ECX bit 28 check: golang.org/x/sys/cpu exposes the finer-grained
// bit the library actually gates vectorized execution on.
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

// bestVectorWidth picks the widest lane width this build and CPU support.
// archsimd-backed kernels only exist under goexperiment.simd; everything
// else runs WidthScalar regardless of what the CPU could do.
func bestVectorWidth() VectorWidth {
	if !simdBuildEnabled {
		return WidthScalar
	}
	if hasAVX2() {
		return WidthAVX
	}
	return WidthSSE
}
