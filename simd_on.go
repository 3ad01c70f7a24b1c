//go:build goexperiment.simd

package fft

// simdBuildEnabled is true when this binary was built with GOEXPERIMENT=simd,
// making the archsimd-backed kernels in kernel_simd.go available.
const simdBuildEnabled = true
