package bench

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownAlgorithm is returned when a Runner is configured with an
// Algorithm value outside the enum.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Algorithm identifies one of the three solvers.
type Algorithm int

const (
	// BranchAndBound is the exact, time-bounded search.
	BranchAndBound Algorithm = iota
	// TwiceAroundTree is the tree-doubling 2-approximation.
	TwiceAroundTree
	// Christofides is the matching-based 1.5-approximation.
	Christofides
)

// Algorithms lists every solver in canonical benchmark order.
var Algorithms = []Algorithm{BranchAndBound, TwiceAroundTree, Christofides}

func (a Algorithm) String() string {
	switch a {
	case BranchAndBound:
		return "branch_and_bound"
	case TwiceAroundTree:
		return "2_tree"
	case Christofides:
		return "christofides"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps user-facing names ("bb", "tree", "christofides" and the
// canonical String() forms) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch s {
	case "bb", "branch_and_bound", "branch-and-bound":
		return BranchAndBound, true
	case "tree", "2tree", "2_tree", "twice_around_tree":
		return TwiceAroundTree, true
	case "christofides":
		return Christofides, true
	default:
		return 0, false
	}
}

// Cost is a tour length or the NA sentinel. The zero value is NA, so a Result
// whose solver never produced a number is automatically marked as such.
type Cost struct {
	value float64
	known bool
}

// CostOf wraps a numeric tour length.
func CostOf(v float64) Cost { return Cost{value: v, known: true} }

// CostNA is the "no proven optimum within the budget" sentinel.
func CostNA() Cost { return Cost{} }

// Known reports whether the cost carries a numeric value.
func (c Cost) Known() bool { return c.known }

// Value returns the numeric cost; only meaningful when Known.
func (c Cost) Value() float64 { return c.value }

// String renders the numeric value, or the literal "NA".
func (c Cost) String() string {
	if !c.known {
		return "NA"
	}

	return strconv.FormatFloat(c.value, 'f', -1, 64)
}

// Result is the outcome of one (instance, algorithm) pair.
type Result struct {
	Algorithm Algorithm
	Cost      Cost
	Elapsed   time.Duration
}

// Report collects the results for one instance. Err is set when the instance
// could not be processed at all (parse failure or invariant violation); its
// Results are then empty and the CSV row carries NA throughout.
type Report struct {
	Instance  string
	Dimension int
	RunID     uuid.UUID
	Results   []Result
	Err       error
}

// resultFor returns the result for algorithm a, if present.
func (r Report) resultFor(a Algorithm) (Result, bool) {
	for _, res := range r.Results {
		if res.Algorithm == a {
			return res, true
		}
	}

	return Result{}, false
}
