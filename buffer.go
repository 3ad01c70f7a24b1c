package fft

// Buffer is a scratch area ExecuteReal uses to stage the N+2 interleaved
// floats a real transform of size N needs: N samples in the time domain,
// or N/2+1 complex bins (N+2 floats) in the frequency domain. A Buffer is
// not safe for concurrent use by more than one goroutine at a time, but
// may be reused across any number of sequential ExecuteReal calls against
// plans of the same N, and across different plans that share N (§5).
type Buffer struct {
	n    int
	data []float32
}

// NewBuffer allocates a scratch buffer sized for real transforms of length
// N. N must be a power of two; NewBuffer does not validate this itself
// (ExecuteReal does, via the owning Plan) so it can be called before a
// Plan exists.
func NewBuffer(n int) *Buffer {
	return &Buffer{n: n, data: make([]float32, n+2)}
}

// N reports the transform size this buffer was sized for.
func (b *Buffer) N() int { return b.n }

// Data exposes the raw interleaved storage. Real samples occupy
// Data()[:N] before a forward transform, or [2*(N/2+1)] packed
// (re,im) complex bins after one; ExecuteReal documents the exact layout.
func (b *Buffer) Data() []float32 { return b.data }
