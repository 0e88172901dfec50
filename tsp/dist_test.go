// Package tsp_test verifies the Euclidean distance matrix construction and
// the metric validation rules.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lcrocha/tspbench/tsp"
)

func TestNewDistanceMatrix_UnitSquare(t *testing.T) {
	dist := tsp.NewDistanceMatrix(unitSquare)

	if len(dist) != 4 {
		t.Fatalf("order: got %d want 4", len(dist))
	}
	// Sides are 1, diagonals √2.
	mustFloatClose(t, dist[0][1], 1, epsTight)
	mustFloatClose(t, dist[1][2], 1, epsTight)
	mustFloatClose(t, dist[0][2], math.Sqrt2, epsTight)
	mustFloatClose(t, dist[1][3], math.Sqrt2, epsTight)
}

func TestNewDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	dist := tsp.NewDistanceMatrix(scatterPoints(25))

	var i, j int
	for i = 0; i < len(dist); i++ {
		if dist[i][i] != 0 {
			t.Fatalf("diagonal entry d[%d][%d]=%v; want 0", i, i, dist[i][i])
		}
		for j = 0; j < len(dist); j++ {
			// Exact equality: the matrix is mirrored, not recomputed.
			if dist[i][j] != dist[j][i] {
				t.Fatalf("asymmetry at (%d,%d): %v vs %v", i, j, dist[i][j], dist[j][i])
			}
			if dist[i][j] < 0 {
				t.Fatalf("negative distance at (%d,%d): %v", i, j, dist[i][j])
			}
		}
	}

	if _, err := tsp.ValidateDistanceMatrix(dist); err != nil {
		t.Fatalf("constructed matrix failed validation: %v", err)
	}
}

func TestNewDistanceMatrix_Degenerate(t *testing.T) {
	if got := tsp.NewDistanceMatrix(nil); len(got) != 0 {
		t.Fatalf("empty input: got order %d", len(got))
	}
	one := tsp.NewDistanceMatrix([]tsp.Point{{X: 3, Y: 4}})
	if len(one) != 1 || one[0][0] != 0 {
		t.Fatalf("single point: got %v", one)
	}
}

func TestValidateDistanceMatrix_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		dist [][]float64
		want error
	}{
		{"ragged", [][]float64{{0, 1}, {1}}, tsp.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, tsp.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, tsp.ErrNegativeWeight},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, tsp.ErrNegativeWeight},
		{"diagonal", [][]float64{{0.5, 1}, {1, 0}}, tsp.ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, tsp.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tsp.ValidateDistanceMatrix(tc.dist); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}
