// Package tsp_test exercises the two approximation pipelines and their
// classical bounds.
package tsp_test

import (
	"testing"

	"github.com/lcrocha/tspbench/tsp"
)

func TestTwiceAroundTree_UnitSquare(t *testing.T) {
	dist := tsp.NewDistanceMatrix(unitSquare)

	tour, cost, err := tsp.TwiceAroundTree(dist)
	if err != nil {
		t.Fatalf("TwiceAroundTree failed: %v", err)
	}
	mustValidTour(t, tour, 4)
	// The square is its own optimal cycle; shortcutting recovers it exactly.
	mustFloatClose(t, cost, 4.0, epsTight)
}

func TestChristofides_UnitSquare(t *testing.T) {
	dist := tsp.NewDistanceMatrix(unitSquare)

	tour, cost, err := tsp.Christofides(dist)
	if err != nil {
		t.Fatalf("Christofides failed: %v", err)
	}
	mustValidTour(t, tour, 4)
	mustFloatClose(t, cost, 4.0, epsTight)
}

func TestTwiceAroundTree_WithinTwiceMST(t *testing.T) {
	for _, n := range []int{5, 9, 17, 40} {
		dist := tsp.NewDistanceMatrix(scatterPoints(n))
		mstW, _, err := tsp.MinimumSpanningTree(dist)
		if err != nil {
			t.Fatalf("n=%d: MinimumSpanningTree failed: %v", n, err)
		}
		tour, cost, err := tsp.TwiceAroundTree(dist)
		if err != nil {
			t.Fatalf("n=%d: TwiceAroundTree failed: %v", n, err)
		}
		mustValidTour(t, tour, n)
		if cost > 2*mstW+epsLoose {
			t.Fatalf("n=%d: cost %v exceeds 2·MST %v", n, cost, 2*mstW)
		}
	}
}

func TestChristofides_WithinFactorOfOptimum(t *testing.T) {
	// On n ≤ 10 the matching is exactly minimal, so the 1.5 bound is a hard
	// guarantee against the brute-force optimum.
	for _, n := range []int{5, 7, 9} {
		dist := tsp.NewDistanceMatrix(scatterPoints(n))
		opt := bruteForceCost(t, dist)

		tour, cost, err := tsp.Christofides(dist)
		if err != nil {
			t.Fatalf("n=%d: Christofides failed: %v", n, err)
		}
		mustValidTour(t, tour, n)
		if cost < opt-epsTight {
			t.Fatalf("n=%d: approximation %v beats the optimum %v", n, cost, opt)
		}
		if cost > 1.5*opt+epsLoose {
			t.Fatalf("n=%d: cost %v exceeds 1.5·OPT %v", n, cost, 1.5*opt)
		}
	}
}

func TestApprox_PermutationProperty(t *testing.T) {
	dist := tsp.NewDistanceMatrix(circlePoints(33))

	tour, _, err := tsp.TwiceAroundTree(dist)
	if err != nil {
		t.Fatalf("TwiceAroundTree failed: %v", err)
	}
	mustValidTour(t, tour, 33)

	tour, _, err = tsp.Christofides(dist)
	if err != nil {
		t.Fatalf("Christofides failed: %v", err)
	}
	mustValidTour(t, tour, 33)
}

func TestApprox_DegenerateInstances(t *testing.T) {
	for n := 1; n <= 3; n++ {
		dist := tsp.NewDistanceMatrix(scatterPoints(n))

		tour, cost, err := tsp.TwiceAroundTree(dist)
		if err != nil {
			t.Fatalf("n=%d: TwiceAroundTree failed: %v", n, err)
		}
		mustValidTour(t, tour, n)
		if n == 1 && cost != 0 {
			t.Fatalf("n=1: cost %v want 0", cost)
		}

		tour, cost2, err := tsp.Christofides(dist)
		if err != nil {
			t.Fatalf("n=%d: Christofides failed: %v", n, err)
		}
		mustValidTour(t, tour, n)
		mustFloatClose(t, cost2, cost, epsTight)
	}
}
