package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBox(t *testing.T) {
	r := Analyze(mesh.Box(1, 2, 3))

	assert.Equal(t, 12, r.TriangleCount)
	assert.Equal(t, 36, r.VertexCount)
	assert.Equal(t, 36, r.EdgeCount)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), r.Dimensions)
	assert.InDelta(t, 6.0, r.Volume, 1e-12)
	assert.InDelta(t, 22.0, r.SurfaceArea, 1e-12)
	assert.InDelta(t, 1.0, r.MinEdgeLength, 1e-12)
	assert.InDelta(t, math.Sqrt(13), r.MaxEdgeLength, 1e-12)
	assert.True(t, r.Closed())
	assert.Zero(t, r.OpenEdges)
}

func TestAnalyzeOpenMesh(t *testing.T) {
	box := mesh.Box(1, 1, 1)
	box.Triangles = box.Triangles[2:]

	r := Analyze(box)
	assert.False(t, r.Closed())
	assert.Equal(t, 4, r.OpenEdges)
}

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze(mesh.New("empty"))
	assert.False(t, r.Closed())
	assert.Zero(t, r.MinEdgeLength)
	assert.Empty(t, r.LongestEdges(5))
}

func TestEdgeQueries(t *testing.T) {
	r := Analyze(mesh.Box(1, 2, 3))

	longest := r.LongestEdges(2)
	require.Len(t, longest, 2)
	assert.InDelta(t, math.Sqrt(13), longest[0].Length, 1e-12)

	shortest := r.ShortestEdges(1)
	require.Len(t, shortest, 1)
	assert.InDelta(t, 1.0, shortest[0].Length, 1e-12)

	for _, e := range r.EdgesByLength(1.5, 2.5) {
		assert.InDelta(t, 2.0, e.Length, 1e-12)
	}
	assert.Len(t, r.LongestEdges(1000), r.EdgeCount)
}

func TestNearestVertex(t *testing.T) {
	v, d := NearestVertex(mesh.Box(1, 1, 1), geometry.NewVector3(1, 1, 1))
	assert.Equal(t, geometry.NewVector3(0.5, 0.5, 0.5), v)
	assert.InDelta(t, math.Sqrt(0.75), d, 1e-12)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500000 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "(1.000000, 2.000000, 3.000000)", FormatVector(geometry.NewVector3(1, 2, 3)))
}
