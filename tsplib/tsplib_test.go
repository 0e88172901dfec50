package tsplib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcrocha/tspbench/tsplib"
)

const squareTSP = `NAME : square4
COMMENT : unit square fixture
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 1
3 1 1
4 1 0
EOF
`

func TestParse_Fixture(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(squareTSP))
	require.NoError(t, err)

	assert.Equal(t, "square4", inst.Name)
	assert.Equal(t, 4, inst.Dimension)
	require.Len(t, inst.Coords, 4)
	assert.Equal(t, 0.0, inst.Coords[0].X)
	assert.Equal(t, 1.0, inst.Coords[2].Y)
	assert.Equal(t, 1.0, inst.Coords[3].X)
}

func TestParse_NoSpacesAroundColon(t *testing.T) {
	in := "NAME:tiny\nDIMENSION:2\nNODE_COORD_SECTION\n1 0 0\n2 3 4\nEOF\n"
	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "tiny", inst.Name)
	assert.Equal(t, 2, inst.Dimension)
}

func TestParse_StopsAtDimensionCount(t *testing.T) {
	// Trailing junk after the declared node count is ignored, mirroring the
	// usual tolerance for sloppy corpus files.
	in := "DIMENSION : 2\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nsome trailing garbage\n"
	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, inst.Coords, 2)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing dimension", "NAME : x\nNODE_COORD_SECTION\n1 0 0\nEOF\n"},
		{"count mismatch", "DIMENSION : 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n"},
		{"non-numeric coord", "DIMENSION : 1\nNODE_COORD_SECTION\n1 a b\nEOF\n"},
		{"bad dimension", "DIMENSION : zero\nNODE_COORD_SECTION\nEOF\n"},
		{"short coord line", "DIMENSION : 1\nNODE_COORD_SECTION\n1 0\nEOF\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tsplib.ErrMalformed)
		})
	}
}

func TestParse_UnsupportedEdgeWeightType(t *testing.T) {
	in := "DIMENSION : 2\nEDGE_WEIGHT_TYPE : EXPLICIT\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n"
	_, err := tsplib.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, tsplib.ErrUnsupportedEdgeWeight)
}

func TestParseFile_NameFallsBackToBasename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fallback7.tsp")
	content := "DIMENSION : 1\nNODE_COORD_SECTION\n1 2 3\nEOF\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	inst, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fallback7", inst.Name)
}

func TestInstances_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.tsp", "a.tsp", "notes.txt", "c.TSP"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	paths, err := tsplib.Instances(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.tsp"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.tsp"), paths[1])
	assert.Equal(t, filepath.Join(dir, "c.TSP"), paths[2])
}
