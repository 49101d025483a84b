package method

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/fredholm/function"
)

var (
	// ErrNilFunction indicates a nil birth or death function.
	ErrNilFunction = errors.New("method: birth and death functions must be non-nil")

	// ErrInvalidWidth indicates a domain half-width that is not finite and positive.
	ErrInvalidWidth = errors.New("method: width must be finite and > 0")

	// ErrInvalidNodeCount indicates a grid with fewer than two nodes.
	ErrInvalidNodeCount = errors.New("method: node count must be >= 2")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("method: iteration count must be >= 0")

	// ErrInvalidDegree indicates a Galerkin degree yielding an empty basis.
	ErrInvalidDegree = errors.New("method: degree must be >= 2")

	// ErrNilCollaborator indicates a nil integrator, solver, weight or basis.
	ErrNilCollaborator = errors.New("method: nil collaborator")
)

// Method approximates u over the solved domain.
type Method interface {
	// Solve returns u = 1 + v for the given birth and death probabilities,
	// parameter and domain half-width. Linear-solver failures
	// (matrix.ErrDimensionMismatch, matrix.ErrSingular) are returned wrapped.
	Solve(birth, death function.Function, parameter, width float64) (function.Function, error)
}

var (
	_ Method = (*Nystrom)(nil)
	_ Method = (*Neumann)(nil)
	_ Method = (*Galerkin)(nil)
)

// Option configures a method.
type Option func(*Options)

// Options is shared by all methods.
type Options struct {
	// Workers bounds goroutines per parallel region; < 1 means GOMAXPROCS.
	Workers int
	// Logger receives Debug-level progress records.
	Logger *slog.Logger
	// Blend is used by methods that return a function.PointFunction.
	Blend function.Blend
}

// DefaultOptions returns GOMAXPROCS workers, a discarding logger and the
// reference blend.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Blend:  function.BlendReference,
	}
}

// WithWorkers bounds the goroutines used by each parallel region.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes progress records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBlend selects the interpolation of tabulated results.
func WithBlend(b function.Blend) Option {
	return func(o *Options) { o.Blend = b }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// equation binds the borrowed inputs of one Solve call.
type equation struct {
	birth, death function.Function
	parameter    float64
}

func newEquation(op string, birth, death function.Function, parameter, width float64) (equation, error) {
	if birth == nil || death == nil {
		return equation{}, fmt.Errorf("%s: %w", op, ErrNilFunction)
	}
	if !(width > 0) || math.IsInf(width, 1) {
		return equation{}, fmt.Errorf("%s(width=%g): %w", op, width, ErrInvalidWidth)
	}

	return equation{birth: birth, death: death, parameter: parameter}, nil
}

// source is (b(x)·p − d(x)) / (1 + d(x)).
func (e equation) source(x float64) float64 {
	d := e.death.Eval(x)

	return (e.birth.Eval(x)*e.parameter - d) / (1 + d)
}

// plusOne shifts v to u = 1 + v in place.
func plusOne(v []float64) []float64 {
	for i := range v {
		v[i]++
	}

	return v
}
