package fft

import (
	"github.com/okfft/splitfft/internal/kernel"
	"github.com/okfft/splitfft/internal/offsets"
	"github.com/okfft/splitfft/internal/realcoef"
	"github.com/okfft/splitfft/internal/twiddle"
)

// Direction selects which way a Plan transforms its input.
type Direction int

const (
	// Forward computes X[k] = sum x[n] * exp(-2*pi*i*k*n/N).
	Forward Direction = iota
	// Inverse computes x[n] = (1/N) * sum X[k] * exp(+2*pi*i*k*n/N).
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Inverse:
		return "Inverse"
	default:
		return "invalid"
	}
}

// minComplexSize and minRealSize are the smallest leaf the engine
// supports; below these the split-radix recursion cannot reach its size-8
// base case plus at least one doubling, matching the original library's
// "size too small" rejection (okfft_create_plan's N < 32 check).
const (
	minComplexSize = 32
	minRealSize    = 64
)

// Plan holds everything needed to repeatedly execute a transform of one
// fixed size and direction. A Plan is immutable after CreatePlan/
// CreatePlanReal returns and is safe for concurrent use by any number of
// goroutines (§5): Execute/ExecuteReal only read Plan fields and write
// through the caller-supplied buffer.
type Plan struct {
	n       int
	dir     Direction
	width   VectorWidth
	program *kernel.Program
	isReal  bool
	realA   []complex128
	realB   []complex128
}

// N reports the transform size this plan was built for. For a real plan
// this is the complex half-size passed to the underlying engine; the
// real signal itself has length 2*N.
func (p *Plan) N() int { return p.n }

// Direction reports which way this plan transforms its input.
func (p *Plan) Direction() Direction { return p.dir }

// VectorWidth reports the SIMD lane width this plan was built to drive.
func (p *Plan) VectorWidth() VectorWidth { return p.width }

func validate(op string, n int, dir Direction, minSize int) error {
	if dir != Forward && dir != Inverse {
		return &PlanError{Op: op, N: n, Dir: dir, Err: ErrBadDirection}
	}
	if n < minSize {
		return &PlanError{Op: op, N: n, Dir: dir, Err: ErrSizeTooSmall}
	}
	if n&(n-1) != 0 {
		return &PlanError{Op: op, N: n, Dir: dir, Err: ErrNotPowerOfTwo}
	}
	return nil
}

// CreatePlan builds an immutable Plan for a complex transform of size n
// and direction dir. n must be a power of two >= 32. CreatePlan never
// requires a specific CPU feature to succeed — ErrNoVectorSupport is
// reserved for builds/platforms where this module cannot even fall back
// to a scalar engine (§6), which this portable implementation never
// triggers; it exists so callers that set up hard vector-only
// requirements via a wrapping Plan still have somewhere to route that
// failure (see DESIGN.md's Open Question resolution).
func CreatePlan(n int, dir Direction) (*Plan, error) {
	if err := validate("CreatePlan", n, dir, minComplexSize); err != nil {
		pkgLogger.Printf("fft: %v", err)
		return nil, err
	}
	return &Plan{
		n:       n,
		dir:     dir,
		width:   bestVectorWidth(),
		program: buildProgram(n),
	}, nil
}

// buildProgram runs the planner's own offset/twiddle elaboration and
// hands the result to kernel.Build, which cross-checks the leaf/stage
// tree it constructs against offs's length before returning — the
// Planner's size-specialized execution handle, built once per Plan.
func buildProgram(n int) *kernel.Program {
	offs := offsets.Build(n)
	is := offsets.Indices(n)
	table := twiddle.Generate(n / 2)
	packed := twiddle.Pack(table, n)
	return kernel.Build(n, offs, is, packed.WS, packed.Is)
}

// CreatePlanReal builds an immutable Plan for a real transform whose time
// domain has n samples (so the complex engine underneath runs at n/2).
// n must be a power of two >= 64.
func CreatePlanReal(n int, dir Direction) (*Plan, error) {
	if err := validate("CreatePlanReal", n, dir, minRealSize); err != nil {
		pkgLogger.Printf("fft: %v", err)
		return nil, err
	}
	half := n / 2
	p := &Plan{
		n:       half,
		dir:     dir,
		width:   bestVectorWidth(),
		program: buildProgram(half),
		isReal:  true,
	}
	p.realA, p.realB = realcoef.Build(n)
	return p, nil
}

// Execute runs the complex transform in place on data, which must have
// length p.N(). Execution cannot fail (§4.7): every precondition was
// checked once, at plan creation.
func (p *Plan) Execute(data []complex64) {
	out := p.program.Run(data, p.dir == Forward)
	if p.dir == Inverse {
		kernel.ApplyScale(out, p.n)
	}
	copy(data, out)
}
