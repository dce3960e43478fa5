package hull

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeCorners() []geometry.Vector3 {
	var pts []geometry.Vector3
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				pts = append(pts, geometry.NewVector3(x, y, z))
			}
		}
	}
	return pts
}

// assertClosedOutward checks that every directed edge has exactly one twin
// and that faces point away from the centroid of the hull.
func assertClosedOutward(t *testing.T, m *mesh.Mesh) {
	t.Helper()

	type edge [2]geometry.Vector3
	edges := make(map[edge]int)
	for i := range m.Triangles {
		vs := m.Triangle(i).Vertices()
		for k := 0; k < 3; k++ {
			edges[edge{vs[k], vs[(k+1)%3]}]++
		}
	}
	for e, n := range edges {
		assert.Equal(t, 1, n, "edge %v used %d times", e, n)
		assert.Equal(t, 1, edges[edge{e[1], e[0]}], "edge %v has no twin", e)
	}

	center := m.BoundingBox().Center()
	for i, n := range m.FaceNormals() {
		tri := m.Triangle(i)
		assert.Greater(t, n.Dot(tri.Center().Sub(center)), 0.0, "triangle %d faces inward", i)
	}
}

func TestReconstructCube(t *testing.T) {
	m, err := Reconstruct(cubeCorners(), DefaultTolerance)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 12, m.TriangleCount())
	assert.Len(t, m.Vertices, 36)
	assert.InDelta(t, 1.0, m.Volume(), 1e-9)
	assert.InDelta(t, 6.0, m.SurfaceArea(), 1e-9)
	assertClosedOutward(t, m)
}

func TestReconstructIgnoresInteriorAndDuplicatePoints(t *testing.T) {
	pts := cubeCorners()
	pts = append(pts, cubeCorners()...)
	pts = append(pts,
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.1, -0.2, 0.3),
		geometry.NewVector3(0.5, 0, 0),           // on a face
		geometry.NewVector3(0.5+1e-5, 0.5, 0.5), // merged into a corner
	)

	m, err := Reconstruct(pts, DefaultTolerance)
	require.NoError(t, err)

	assert.Equal(t, 12, m.TriangleCount())
	assert.InDelta(t, 1.0, m.Volume(), 1e-9)
	assertClosedOutward(t, m)
}

func TestReconstructFromBoxSoup(t *testing.T) {
	m, err := Reconstruct(mesh.Box(2, 1, 3).Soup(), DefaultTolerance)
	require.NoError(t, err)

	assert.Equal(t, 12, m.TriangleCount())
	assert.InDelta(t, 6.0, m.Volume(), 1e-9)
}

func TestReconstructOctahedron(t *testing.T) {
	pts := []geometry.Vector3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		{X: 0.2, Y: 0.2, Z: 0.2},
	}

	m, err := Reconstruct(pts, DefaultTolerance)
	require.NoError(t, err)

	assert.Equal(t, 8, m.TriangleCount())
	assert.InDelta(t, 4.0/3.0, m.Volume(), 1e-9)
	assertClosedOutward(t, m)
}

func TestReconstructSphereCloudContainsAllPoints(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	pts := make([]geometry.Vector3, 248)
	for i := range pts {
		// Normalized gaussian samples are uniform on the sphere.
		pts[i] = geometry.NewVector3(rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64()).Normalize()
	}

	m, err := Reconstruct(pts, DefaultTolerance)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assertClosedOutward(t, m)

	// Every point lies on the sphere, so every point is a hull vertex.
	assert.Equal(t, 2*len(pts)-4, m.TriangleCount())

	for i, n := range m.FaceNormals() {
		corner := m.Triangle(i).V1
		for _, p := range pts {
			d := geometry.SignedDistance(p, corner, n)
			if d > DefaultTolerance {
				t.Fatalf("point %v lies %g outside triangle %d", p, d, i)
			}
		}
	}

	vol := m.Volume()
	assert.Less(t, vol, 4.0/3.0*math.Pi)
	assert.Greater(t, vol, 3.8)
}

func TestReconstructDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []geometry.Vector3
	}{
		{"empty", nil},
		{"three points", []geometry.Vector3{{X: 0}, {X: 1}, {Y: 1}}},
		{"coincident", []geometry.Vector3{{X: 1}, {X: 1}, {X: 1 + 1e-6}, {X: 1}, {X: 1}}},
		{"collinear", []geometry.Vector3{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}},
		{"coplanar", []geometry.Vector3{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconstruct(tt.points, DefaultTolerance)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDegenerateGeometry))
		})
	}
}

func TestMerge(t *testing.T) {
	pts := []geometry.Vector3{
		{X: 0}, {X: 5e-5}, {X: 2e-4}, {X: 1},
	}

	assert.Len(t, Merge(pts, DefaultTolerance), 3)
	assert.Len(t, Merge(pts, 0), 4)
	assert.Equal(t, pts[0], Merge(pts, DefaultTolerance)[0])
}

func TestMergeToleranceBelowResolution(t *testing.T) {
	next := math.Nextafter(1e4, 2e4)
	pts := []geometry.Vector3{
		{X: 1e4}, {X: 1e4}, {X: next}, {X: -1e4, Y: 3e4},
	}

	merged := Merge(pts, 1e-15)
	assert.Equal(t, []geometry.Vector3{{X: 1e4}, {X: next}, {X: -1e4, Y: 3e4}}, merged)
}
