package readfiles

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotrimesh/geometry2D"
	"github.com/notargets/gotrimesh/types"
)

func TestParseSU2(t *testing.T) {
	grid, err := ParseSU2(bytes.NewReader(inputFile))
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Dimensionality)
	K := len(grid.EToV)
	assert.Equal(t, 22, K)
	assert.Equal(t, geometry2D.Triangle{15, 11, 17}, grid.EToV[K-1])
	Nv := grid.VX.Len()
	assert.Equal(t, 18, Nv)
	assert.Equal(t, 18, grid.VY.Len())
	assert.Equal(t, -7.100939331382065, grid.VX.Data()[Nv-1])
	assert.Equal(t, 2.889910324036197, grid.VY.Data()[Nv-1])
	labels := []string{"periodic-left", "periodic-right", "top", "bottom"}
	nptsBC := []int{2, 2, 4, 4}
	require.Len(t, grid.Markers, 4)
	for n, m := range grid.Markers {
		assert.Equal(t, labels[n], m.Tag)
		assert.Len(t, m.Edges, nptsBC[n])
	}
	assert.Equal(t, [2]int{6, 1}, grid.Markers[3].Edges[3])
}

func TestSU2RoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 1}, {4, 3}, {7, 5}} {
		nx, ny := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", nx, ny), func(t *testing.T) {
			rm, err := geometry2D.NewRectMeshNxNy(nx, ny)
			require.NoError(t, err)
			path := filepath.Join(t.TempDir(), "mesh.su2")
			require.NoError(t, WriteSU2File(path, rm))
			grid, err := ReadSU2(path, testing.Verbose())
			require.NoError(t, err)
			assert.Equal(t, rm.EToV, grid.EToV)
			assert.Equal(t, rm.VX.Data(), grid.VX.Data())
			assert.Equal(t, rm.VY.Data(), grid.VY.Data())
			assert.Equal(t, BoundaryMarkers(rm), grid.Markers)

			// Marker edges are exactly the mesh boundary edges
			var keys types.EdgeKeys
			for _, m := range grid.Markers {
				for _, e := range m.Edges {
					keys = append(keys, types.NewEdgeKey(e))
				}
			}
			c := geometry2D.Connect2D(rm)
			assert.ElementsMatch(t, c.BoundaryEdges, keys)
		})
	}
}

func TestBoundaryMarkers(t *testing.T) {
	rm, err := geometry2D.NewRectMeshNxNy(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []Marker{
		{Tag: "bottom", Edges: [][2]int{{0, 1}, {1, 2}}},
		{Tag: "right", Edges: [][2]int{{2, 5}}},
		{Tag: "top", Edges: [][2]int{{5, 4}, {4, 3}}},
		{Tag: "left", Edges: [][2]int{{3, 0}}},
	}, BoundaryMarkers(rm))

	rm, err = geometry2D.NewRectMeshNxNy(0, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteSU2(&buf, rm))
	grid, err := ParseSU2(&buf)
	require.NoError(t, err)
	assert.Empty(t, grid.EToV)
	assert.Equal(t, 3, grid.VX.Len())
	assert.Len(t, grid.Markers[1].Edges, 2)
	assert.Empty(t, grid.Markers[0].Edges)
}

func TestParseSU2Errors(t *testing.T) {
	cases := map[string]string{
		"three dimensional": "NDIME= 3\n",
		"not a count":       "NDIME= two\n",
		"missing equals":    "NDIME 2\n",
		"quad element":      "NDIME= 2\nNELEM= 1\n9 0 1 2 3 0\n",
		"truncated":         "NDIME= 2\nNELEM= 2\n5 0 1 2 0\n",
		"bad vertex index":  "NDIME= 2\nNELEM= 1\n5 0 1 7 0\nNPOIN= 3\n0 0 0\n1 0 1\n0 1 2\nNMARK= 0\n",
		"bad marker type":   "NDIME= 2\nNELEM= 0\nNPOIN= 0\nNMARK= 1\nMARKER_TAG= x\nMARKER_ELEMS= 1\n5 0 1\n",
		"huge NELEM":        "NDIME= 2\nNELEM= 4000000000000000000\n",
		"huge NPOIN":        "NDIME= 2\nNELEM= 0\nNPOIN= 4000000000000000000\n",
		"huge NMARK":        "NDIME= 2\nNELEM= 0\nNPOIN= 0\nNMARK= 4000000000000000000\n",
		"huge MARKER_ELEMS": "NDIME= 2\nNELEM= 0\nNPOIN= 0\nNMARK= 1\nMARKER_TAG= x\nMARKER_ELEMS= 4000000000000000000\n",
		"short NPOIN":       "NDIME= 2\nNELEM= 0\nNPOIN= 1000000000\n0 0 0\n",
	}
	for name, doc := range cases {
		var err error
		require.NotPanics(t, func() {
			_, err = ParseSU2(strings.NewReader(doc))
		}, name)
		assert.Error(t, err, name)
	}
	_, err := ParseSU2(strings.NewReader("NDIME= 2\nNELEM= 2\n5 0 1 2 0\n"))
	assert.True(t, errors.Is(err, ErrEarlyEOF))

	_, err = ReadSU2(filepath.Join(t.TempDir(), "missing.su2"), false)
	assert.Error(t, err)
}

var (
	inputFile = []byte(` %This is an example input file in SU2 format, output from gmsh
% Comments can appear outside of data areas
NDIME= 2
% Comments can appear outside of data areas
NELEM= 22
5 5 6 13 0
5 9 10 12 1
5 12 5 13 2
5 9 12 13 3
5 13 6 14 4
5 12 10 15 5
5 8 9 13 6
5 4 5 12 7
5 1 7 14 8
5 6 1 14 9
5 3 11 15 10
5 10 3 15 11
5 8 13 16 12
5 4 12 17 13
5 13 14 16 14
5 12 15 17 15
5 7 2 16 16
5 11 0 17 17
5 2 8 16 18
5 0 4 17 19
5 14 7 16 20
5 15 11 17 21
% Comments can appear outside of data areas
NPOIN= 18
-10 0 0
10 0 1
10 10 2
-10 10 3
-5.000000000004944 0 4
-1.231725832440134e-11 0 5
4.99999999999384 0 6
10 4.999999999992398 7
5.000000000004944 10 8
1.231725832440134e-11 10 9
-4.99999999999384 10 10
-10 5 11
-2.500000000008632 4.330127018915808 12
2.50000000000863 5.669872981084192 13
6.712741669205853 3.668411415814691 14
-6.712741669205681 6.331588584184096 15
7.100939331384343 7.110089675963254 16
-7.100939331382065 2.889910324036197 17
NMARK= 4
% Comments can appear outside of data areas
MARKER_TAG= periodic-left
% Comments can appear outside of data areas
MARKER_ELEMS= 2
3 3 11
3 11 0
% Comments can appear outside of data areas
MARKER_TAG= periodic-right
MARKER_ELEMS= 2
3 1 7
3 7 2
% Comments can appear outside of data areas
MARKER_TAG= top
MARKER_ELEMS= 4
3 2 8
3 8 9
3 9 10
3 10 3
MARKER_TAG= bottom
% Comments can appear outside of data areas
MARKER_ELEMS= 4
3 0 4
3 4 5
3 5 6
3 6 1
% Comments can appear outside of data areas
`)
)
