// Package tsp - shared types and sentinel errors.
//
// All failure modes in this package surface as the sentinel errors below;
// no fmt.Errorf where a sentinel suffices. Callers are expected to test with
// errors.Is. Exceeding the exact solver's time budget is an outcome, not an
// error (see ExactResult.Optimal).
package tsp

import (
	"errors"
	"math"
	"time"
)

// ErrDimensionMismatch is returned when a matrix is ragged, a tour or subset
// refers to out-of-range indices, or slice lengths disagree with the declared
// instance order.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// ErrNonSquare is returned when a distance matrix is not square.
var ErrNonSquare = errors.New("tsp: matrix is not square")

// ErrNonZeroDiagonal is returned when a self-distance deviates from zero.
var ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal entry")

// ErrNegativeWeight is returned when a distance is negative or NaN.
var ErrNegativeWeight = errors.New("tsp: negative or NaN weight")

// ErrAsymmetry is returned when d[i][j] differs from d[j][i] beyond tolerance.
var ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

// ErrDisconnected is returned when a multigraph handed to EulerianCircuit does
// not reach all of its edges from the start vertex.
var ErrDisconnected = errors.New("tsp: multigraph is disconnected")

// ErrOddDegree is returned when a multigraph handed to EulerianCircuit has a
// vertex of odd degree. This is an internal invariant violation: callers must
// double the MST or union it with a perfect matching first.
var ErrOddDegree = errors.New("tsp: vertex of odd degree in eulerian multigraph")

// ErrOddSubset is returned when MinWeightPerfectMatching receives a subset of
// odd cardinality. By the handshake lemma the odd-degree set of any graph is
// even, so this too is an invariant violation, never a user-input condition.
var ErrOddSubset = errors.New("tsp: odd-size subset for perfect matching")

// ErrNegativeTimeLimit is returned when Options.TimeLimit is negative and not
// the NoTimeLimit sentinel.
var ErrNegativeTimeLimit = errors.New("tsp: negative time limit")

// NoTimeLimit disables deadline polling in BranchAndBound. A zero TimeLimit
// means a zero budget (the search observes an already-expired deadline), which
// keeps "run with limit N seconds" monotonic all the way down to N = 0.
const NoTimeLimit time.Duration = math.MaxInt64

// symTol is the structural tolerance for symmetry/diagonal checks.
// Distances derived from float64 coordinates agree exactly across the
// diagonal, so the tolerance only guards externally supplied matrices.
const symTol = 1e-12

// Point is a node position in the Euclidean plane.
type Point struct {
	X float64
	Y float64
}

// Options configures BranchAndBound.
type Options struct {
	// TimeLimit is the wall-clock budget for the search. Zero means an
	// immediately expiring budget; NoTimeLimit disables the deadline.
	TimeLimit time.Duration
}

// DefaultOptions returns the configuration used by the benchmark harness:
// a 1800-second budget, matching the corpus protocol.
func DefaultOptions() Options {
	return Options{TimeLimit: 1800 * time.Second}
}

// ExactResult is the outcome of BranchAndBound.
//
// Cost is never conflated with a sentinel numeric value: when the deadline
// expired before the frontier was exhausted, Optimal is false and Cost/Tour
// describe the best incumbent found so far (Tour is nil when none was found).
type ExactResult struct {
	// Tour is the closed cycle [0, …, 0] of length n+1, or nil when the
	// deadline expired before any complete tour was reached.
	Tour []int

	// Cost is the length of Tour; meaningful only when Tour != nil.
	Cost float64

	// Optimal reports whether the frontier was exhausted, i.e. Cost is the
	// proven global minimum.
	Optimal bool

	// Expanded counts the search nodes popped from the frontier.
	Expanded int
}
