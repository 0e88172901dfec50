package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lcrocha/tspbench/bench"
)

func TestCost_TaggedSemantics(t *testing.T) {
	na := bench.CostNA()
	assert.False(t, na.Known())
	assert.Equal(t, "NA", na.String())

	// The zero value is NA too: a result that never got a number cannot
	// masquerade as cost 0.
	var zero bench.Cost
	assert.False(t, zero.Known())
	assert.Equal(t, "NA", zero.String())

	c := bench.CostOf(1234.5)
	assert.True(t, c.Known())
	assert.Equal(t, 1234.5, c.Value())
	assert.Equal(t, "1234.5", c.String())
}

func TestAlgorithm_Names(t *testing.T) {
	assert.Equal(t, "branch_and_bound", bench.BranchAndBound.String())
	assert.Equal(t, "2_tree", bench.TwiceAroundTree.String())
	assert.Equal(t, "christofides", bench.Christofides.String())
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]bench.Algorithm{
		"bb":               bench.BranchAndBound,
		"branch_and_bound": bench.BranchAndBound,
		"tree":             bench.TwiceAroundTree,
		"2_tree":           bench.TwiceAroundTree,
		"christofides":     bench.Christofides,
	} {
		got, ok := bench.ParseAlgorithm(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := bench.ParseAlgorithm("simulated_annealing")
	assert.False(t, ok)
}
