// Package tsp_test provides lightweight helpers shared across the *_test.go
// files in this package: fixture geometries, a brute-force reference solver
// for small instances, and strict comparison utilities.
package tsp_test

import (
	"math"
	"testing"

	"github.com/lcrocha/tspbench/tsp"
)

const (
	// epsTight is the tolerance for comparisons that should agree up to the
	// implementation's 1e-9 cost stabilization.
	epsTight = 1e-9

	// epsLoose is a relaxed tolerance for noisy geometric comparisons.
	epsLoose = 1e-6
)

// unitSquare is the canonical end-to-end fixture: the optimal tour is the
// perimeter, cost 4.
var unitSquare = []tsp.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// circlePoints places n points evenly on the unit circle; the optimal tour is
// the circle order.
func circlePoints(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = tsp.Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	return pts
}

// scatterPoints is a fixed, irregular deterministic point cloud (no RNG so
// failures reproduce byte-for-byte).
func scatterPoints(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	for i := 0; i < n; i++ {
		f := float64(i + 1)
		pts[i] = tsp.Point{
			X: math.Mod(f*12.9898, 7.3) * 10,
			Y: math.Mod(f*78.2331, 5.1) * 10,
		}
	}

	return pts
}

// edgesCount counts undirected multigraph edges encoded by adjacency lists.
func edgesCount(adj [][]int) int {
	total := 0
	for _, row := range adj {
		total += len(row)
	}

	return total / 2
}

// bruteForceCost enumerates all (n-1)! tours fixing vertex 0 and returns the
// minimum cycle cost. Only usable for small n.
func bruteForceCost(t *testing.T, dist [][]float64) float64 {
	t.Helper()
	n := len(dist)
	if n < 2 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := math.Inf(1)

	var walk func(perm []int, k int)
	walk = func(perm []int, k int) {
		if k == len(perm) {
			cost := dist[0][perm[0]]
			for i := 0; i+1 < len(perm); i++ {
				cost += dist[perm[i]][perm[i+1]]
			}
			cost += dist[perm[len(perm)-1]][0]
			if cost < best {
				best = cost
			}

			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(perm, k+1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(rest, 0)

	return best
}

// mustFloatClose fails unless got is within tol of want.
func mustFloatClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Fatalf("float mismatch: got=%v want=%v tol=%v", got, want, tol)
	}
}

// mustValidTour fails unless tour is a closed permutation cycle over 0..n-1.
func mustValidTour(t *testing.T, tour []int, n int) {
	t.Helper()
	if err := tsp.ValidateTour(tour, n); err != nil {
		t.Fatalf("invalid tour %v for n=%d: %v", tour, n, err)
	}
}
