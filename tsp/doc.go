// Package tsp provides Euclidean Travelling Salesman Problem solvers and the
// graph primitives they are built from.
//
// It includes three solvers over a dense distance matrix ([][]float64):
//
//   - TwiceAroundTree — the classic tree-doubling 2-approximation:
//     MST → doubled multigraph → Eulerian circuit → shortcut.
//     Complexity: O(n²).
//
//   - Christofides — the 1.5-approximation:
//     MST → min-weight perfect matching on odd-degree vertices →
//     Eulerian circuit → shortcut.
//     Complexity: O(n²) + matching cost (see MinWeightPerfectMatching).
//
//   - BranchAndBound — exact best-first search with an admissible
//     two-minimum-edges lower bound and a wall-clock budget.
//     Complexity: exponential in the worst case; the budget makes every call
//     terminate in bounded time.
//
// The primitives (MinimumSpanningTree, EulerianCircuit,
// MinWeightPerfectMatching, ShortcutCircuit, TourCost) are exported as
// standalone, independently testable components with their own contracts, so
// the correctness of the pipelines never depends on an opaque dependency's
// tie-breaking.
//
// All approximation guarantees assume the matrix is a true metric (symmetric,
// zero diagonal, triangle inequality). NewDistanceMatrix constructs such a
// matrix from planar points; arbitrary matrices are checked by
// ValidateDistanceMatrix.
//
// Determinism: every algorithm here breaks ties by smallest vertex index (or
// insertion order in the search frontier), so identical inputs always yield
// identical tours. No RNG, no logging, no hidden state.
package tsp
