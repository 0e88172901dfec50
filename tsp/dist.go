package tsp

import "math"

// NewDistanceMatrix builds the n×n Euclidean distance matrix for the given
// points. The result is symmetric with a zero diagonal and, being Euclidean,
// satisfies the triangle inequality — the precondition every approximation
// guarantee in this package rests on.
//
// Pure function; no failure modes (n = 0 yields an empty matrix, n = 1 a
// single zero entry — degenerate instances are the caller's concern).
//
// Time:  O(n²).
// Space: O(n²).
func NewDistanceMatrix(coords []Point) [][]float64 {
	n := len(coords)
	dist := make([][]float64, n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	// Fill the upper triangle and mirror it, so symmetry is exact by
	// construction rather than up to FP evaluation order.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(coords[i].X-coords[j].X, coords[i].Y-coords[j].Y)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist
}

// ValidateDistanceMatrix verifies that dist is a usable metric input:
// square, finite, non-negative, zero diagonal, symmetric within symTol.
// It returns the matrix order n on success.
//
// Time: O(n²).
func ValidateDistanceMatrix(dist [][]float64) (int, error) {
	n := len(dist)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = dist[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return 0, ErrNegativeWeight
			}
		}
		if dist[i][i] > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(dist[i][j]-dist[j][i]) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
