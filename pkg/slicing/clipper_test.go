package slicing

import (
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xPlane = geometry.NewPlane(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func clip(c Clipper, tri [3]geometry.Vector3) ([]geometry.Vector3, []geometry.Vector3) {
	return c.Clip(tri, xPlane, nil, nil)
}

var allPolicies = []OnPlanePolicy{OnPlaneBoth, OnPlaneFront, OnPlaneFrontDuplicateBack}

func TestClipWholeTriangles(t *testing.T) {
	inFront := [3]geometry.Vector3{v(1, 0, 0), v(2, 1, 0), v(3, 0, 1)}
	behind := [3]geometry.Vector3{v(-1, 0, 0), v(-2, 1, 0), v(-3, 0, 1)}

	for _, policy := range allPolicies {
		t.Run(policy.String(), func(t *testing.T) {
			c := NewClipper(1e-9, policy)

			front, back := clip(c, inFront)
			assert.Equal(t, inFront[:], front)
			assert.Empty(t, back)

			front, back = clip(c, behind)
			assert.Empty(t, front)
			assert.Equal(t, behind[:], back)
		})
	}
}

func TestClipStraddling(t *testing.T) {
	tri := [3]geometry.Vector3{v(1, 0, 0), v(-1, 1, 0), v(-1, -1, 0)}
	front, back := clip(DefaultClipper(), tri)

	require.Len(t, front, 3)
	require.Len(t, back, 4)
	assert.Equal(t, []geometry.Vector3{v(0, -0.5, 0), v(1, 0, 0), v(0, 0.5, 0)}, front)
	assert.Equal(t, []geometry.Vector3{v(0, -0.5, 0), v(0, 0.5, 0), v(-1, 1, 0), v(-1, -1, 0)}, back)

	// Both fragments keep the winding of the input.
	normal := geometry.FaceNormal(tri[0], tri[1], tri[2])
	assert.Equal(t, normal, geometry.FaceNormal(front[0], front[1], front[2]))
	assert.Equal(t, normal, geometry.FaceNormal(back[0], back[1], back[2]))
}

func TestClipIntersectionLiesOnPlane(t *testing.T) {
	plane := geometry.NewPlane(v(0.2, -0.1, 0.3), v(0.3, 1, -0.7))
	tri := [3]geometry.Vector3{v(-2, -3, 1), v(1.5, 2, -0.25), v(0.3, 4, 2)}

	front, back := DefaultClipper().Clip(tri, plane, nil, nil)
	require.NotEmpty(t, front)
	require.NotEmpty(t, back)

	shared := 0
	for _, p := range front {
		for _, q := range back {
			if p == q {
				shared++
				assert.InDelta(t, 0, plane.Distance(p), 1e-12)
			}
		}
	}
	assert.Equal(t, 2, shared)
}

func TestClipOnPlanePolicies(t *testing.T) {
	// One vertex on the plane, one in front, one behind.
	apex := [3]geometry.Vector3{v(0, 0, 0), v(1, 1, 0), v(-1, 1, 0)}
	// Two vertices on the plane, one behind.
	edge := [3]geometry.Vector3{v(0, 0, 0), v(0, 1, 0), v(-1, 0, 0)}

	tests := []struct {
		policy    OnPlanePolicy
		tri       [3]geometry.Vector3
		wantFront []geometry.Vector3
		wantBack  []geometry.Vector3
	}{
		{OnPlaneBoth, apex, []geometry.Vector3{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 0, 0), v(0, 1, 0), v(-1, 1, 0)}},
		{OnPlaneFront, apex, []geometry.Vector3{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 1, 0), v(-1, 1, 0)}},
		{OnPlaneFrontDuplicateBack, apex, []geometry.Vector3{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 1, 0), v(-1, 1, 0)}},
		{OnPlaneBoth, edge, []geometry.Vector3{v(0, 0, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 0, 0), v(0, 1, 0), v(-1, 0, 0)}},
		{OnPlaneFront, edge, []geometry.Vector3{v(0, 0, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 1, 0), v(-1, 0, 0)}},
		{OnPlaneFrontDuplicateBack, edge, []geometry.Vector3{v(0, 0, 0), v(0, 1, 0)}, []geometry.Vector3{v(0, 1, 0), v(0, 1, 0), v(-1, 0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			front, back := clip(NewClipper(1e-9, tt.policy), tt.tri)
			assert.Equal(t, tt.wantFront, front)
			assert.Equal(t, tt.wantBack, back)
		})
	}
}

func TestClipCoplanarTriangle(t *testing.T) {
	tri := [3]geometry.Vector3{v(0, 0, 0), v(0, 1, 0), v(0, 0, 1)}

	front, back := clip(NewClipper(1e-9, OnPlaneBoth), tri)
	assert.Equal(t, tri[:], front)
	assert.Equal(t, tri[:], back)

	front, back = clip(NewClipper(1e-9, OnPlaneFront), tri)
	assert.Equal(t, tri[:], front)
	assert.Empty(t, back)
}

func TestClipToleranceWidensPlane(t *testing.T) {
	tri := [3]geometry.Vector3{v(0.001, 0, 0), v(0.001, 1, 0), v(-1, 0, 0)}

	// With a wide band the first two vertices count as on the plane and no
	// intersection point is created.
	front, back := clip(NewClipper(0.01, OnPlaneBoth), tri)
	assert.Len(t, front, 2)
	assert.Equal(t, tri[:], back)

	front, back = clip(NewClipper(1e-9, OnPlaneBoth), tri)
	assert.Len(t, front, 4)
	assert.Len(t, back, 3)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range allPolicies {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePolicy("sideways")
	assert.Error(t, err)
}
