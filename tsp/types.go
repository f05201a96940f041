package tsp

import "errors"

// Sentinel errors returned by the solvers in this package.
var (
	// ErrDimensionMismatch indicates an ill-shaped input: a nil or ragged
	// matrix, a tour of the wrong length, or indices outside [0..n-1].
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrIncompleteGraph indicates the distance matrix does not admit any
	// Hamiltonian cycle (some required edge is missing / +Inf).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight indicates a negative distance entry was detected.
	ErrNegativeWeight = errors.New("tsp: negative edge weight encountered")

	// ErrStartOutOfRange indicates a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMatchingNotImplemented flags that a true minimum-weight perfect
	// matching (blossom) is pending; callers fall back to the greedy pairing.
	ErrMatchingNotImplemented = errors.New("tsp: exact matching not implemented")
)

const (
	// DefaultEps is the improvement tolerance for 2-opt: a move is accepted
	// only when it shortens the tour by more than this amount. The margin
	// prevents infinite oscillation on floating-point near-ties.
	DefaultEps = 1e-4

	// DefaultMaxPasses caps the number of full 2-opt improvement passes.
	// The cap bounds worst-case runtime on pathological inputs and is a
	// deliberate non-optimality trade-off.
	DefaultMaxPasses = 1000
)

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64
}

// TwoOptOptions tunes the 2-opt local search.
type TwoOptOptions struct {
	// Eps is the strict improvement tolerance (Δ must be < −Eps).
	Eps float64

	// MaxPasses bounds the number of full neighborhood sweeps; 0 means
	// DefaultMaxPasses.
	MaxPasses int
}

// DefaultTwoOptOptions returns the production defaults: Eps=1e-4,
// MaxPasses=1000.
func DefaultTwoOptOptions() TwoOptOptions {
	return TwoOptOptions{
		Eps:       DefaultEps,
		MaxPasses: DefaultMaxPasses,
	}
}
