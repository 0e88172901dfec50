// Package tsp - tour utilities shared by the exact and approximate solvers.
//
// A tour is a closed Hamiltonian cycle over vertices 0..n-1 encoded as a
// slice of length n+1 with tour[0] == tour[n] == 0. The helpers here operate
// purely on that structure plus the distance matrix; they neither log nor
// panic on user input — only sentinel errors from types.go.
package tsp

import "math"

// roundScale controls cost stabilization precision (1e-9). Summing Euclidean
// distances in different orders drifts in the last bits across platforms;
// rounding keeps reported costs comparable without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ShortcutCircuit converts a closed Eulerian walk into a Hamiltonian tour by
// emitting each vertex the first time it appears and appending the starting
// vertex to close the cycle. Under the triangle inequality the shortcuts
// never increase the walk's cost.
//
// Contract: walk is non-empty, n ≥ 1, and the walk visits every vertex of
// 0..n-1 at least once (true for Eulerian circuits of connected spanning
// multigraphs). A walk missing vertices yields ErrDimensionMismatch.
//
// Time: O(len(walk)).
func ShortcutCircuit(walk []int, n int) ([]int, error) {
	if len(walk) == 0 || n <= 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		tour = make([]int, 0, n+1)
		seen = make([]bool, n)
		v    int
	)
	for _, v = range walk {
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}
	if len(tour) != n {
		return nil, ErrDimensionMismatch
	}
	tour = append(tour, tour[0])

	return tour, nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants:
// len(tour) == n+1, tour[0] == tour[n] == 0, and positions 0..n-1 form a
// permutation of the vertex set.
//
// Time: O(n).
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums the edge weights along the closed tour with strict per-edge
// validation (indices in range, finite non-negative weight). The sum is
// stabilized by round1e9.
//
// Time: O(n).
func TourCost(dist [][]float64, tour []int) (float64, error) {
	n := len(dist)
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		u, v int
		w    float64
		i    int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n || len(dist[u]) != n {
			return 0, ErrDimensionMismatch
		}
		w = dist[u][v]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrDimensionMismatch
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// ringTour returns the canonical cycle [0, 1, …, n-1, 0]. For n ≤ 3 every
// permutation yields the same cycle cost on a symmetric matrix, so the ring
// is optimal and the solvers return it without searching.
func ringTour(n int) []int {
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = i
	}
	tour[n] = 0

	return tour
}
