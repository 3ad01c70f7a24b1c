package fft

import (
	"math/cmplx"

	"github.com/okfft/splitfft/internal/kernel"
)

// ExecuteReal runs the real-to-complex (forward) or complex-to-real
// (inverse) transform this Plan was built for, through buf, which must
// be sized NewBuffer(2*p.N()), the real length N given to CreatePlanReal
// (§3 Scratch Buffer lifecycle). ExecuteReal
// packs the real signal two samples per complex bin and runs the N/2
// complex transform through the plan's program, then combines bins with the plan's A/B
// coefficients (§4.6) — the standard real-FFT packing trick, derived and
// verified independently of the original source's SSE/AVX hot loops
// (okfft_xf_sse.cpp's okfft_sse_fwd_real/inv_real bodies were filtered
// from the retrieval pack by its size cap; see DESIGN.md).
//
// Forward: buf.Data()[:N] holds N real samples on entry; on return
// buf.Data()[:N+2] holds N/2+1 packed (re,im) complex bins, bin N/2
// (the Nyquist bin) carrying a real-only value in its re slot.
//
// Inverse: buf.Data()[:N+2] holds N/2+1 packed complex bins on entry
// (bins 0 and N/2 expected real-valued, any imaginary part ignored); on
// return buf.Data()[:N] holds N real samples.
func (p *Plan) ExecuteReal(buf *Buffer) {
	if buf.n != 2*p.n {
		panic("fft: ExecuteReal buffer size does not match plan size")
	}
	half := p.n
	if p.dir == Forward {
		z := make([]complex64, half)
		data := buf.data
		for n := 0; n < half; n++ {
			z[n] = complex(data[2*n], data[2*n+1])
		}
		z = p.program.Run(z, true)
		out := realPack(z, p.realA, p.realB, half)
		for k := 0; k <= half; k++ {
			data[2*k] = float32(real(out[k]))
			data[2*k+1] = float32(imag(out[k]))
		}
		return
	}

	data := buf.data
	x := make([]complex128, half+1)
	for k := 0; k <= half; k++ {
		x[k] = complex(float64(data[2*k]), float64(data[2*k+1]))
	}
	z := realUnpack(x, p.realA, p.realB, half)
	zc := make([]complex64, half)
	for i, v := range z {
		zc[i] = complex64(v)
	}
	zc = p.program.Run(zc, false)
	kernel.ApplyScale(zc, half)
	for n := 0; n < half; n++ {
		data[2*n] = real(zc[n])
		data[2*n+1] = imag(zc[n])
	}
}

// realPack combines the half-length complex spectrum z (length half)
// into the half+1 real-signal spectrum bins 0..half, using coefficients
// A[k] = 0.5*(1 - i*W^k), B[k] = 0.5*(1 + i*W^k), W = exp(-2*pi*i/N).
func realPack(z []complex64, a, b []complex128, half int) []complex128 {
	out := make([]complex128, half+1)
	for k := 0; k <= half; k++ {
		zk := complex128(z[k%half])
		zmk := complex128(z[(half-k)%half])
		out[k] = a[k]*zk + b[k]*cmplx.Conj(zmk)
	}
	return out
}

// realUnpack is the inverse of realPack: given the half+1 real-signal
// spectrum bins, it recovers the half-length complex spectrum that the
// plan's inverse-direction program run will turn back into the packed
// real signal.
func realUnpack(x []complex128, a, b []complex128, half int) []complex128 {
	z := make([]complex128, half)

	x0 := real(x[0])
	xm := real(x[half])
	z[0] = complex((x0+xm)/2, (x0-xm)/2)

	k0 := half / 2
	if k0 > 0 {
		ak, bk := a[k0], b[k0]
		ar, ai := real(ak), imag(ak)
		br, bi := real(bk), imag(bk)
		m11, m12 := ar+br, bi-ai
		m21, m22 := ai+bi, ar-br
		det := m11*m22 - m12*m21
		rx, ix := real(x[k0]), imag(x[k0])
		za := (rx*m22 - m12*ix) / det
		zb := (m11*ix - m21*rx) / det
		z[k0] = complex(za, zb)
	}

	for k := 1; k < k0; k++ {
		ak, bk := a[k], b[k]
		det := ak*ak - bk*bk
		p := x[k]
		q := cmplx.Conj(x[half-k])
		u := (p*ak - bk*q) / det
		v := (ak*q - bk*p) / det
		z[k] = u
		z[half-k] = cmplx.Conj(v)
	}
	return z
}
