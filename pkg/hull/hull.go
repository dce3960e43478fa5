// Package hull rebuilds a closed convex mesh from an unordered point cloud.
package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// DefaultTolerance is the distance below which points are merged
const DefaultTolerance = 1e-4

// ErrDegenerateGeometry means the points do not span a volume
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// cellLimit keeps grid coordinates exactly representable; beyond it tol is
// below the float resolution of the input and only exact duplicates merge.
const cellLimit = 1 << 52

// Reconstruct computes the convex hull of points. Points closer than tol are
// merged first. The returned mesh has one vertex per triangle corner and every
// triangle is wound counter-clockwise seen from outside.
func Reconstruct(points []geometry.Vector3, tol float64) (*mesh.Mesh, error) {
	if tol < 0 {
		tol = 0
	}

	pts := Merge(points, tol)
	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: %d distinct points", ErrDegenerateGeometry, len(pts))
	}
	if err := checkVolume(pts, tol); err != nil {
		return nil, err
	}

	cloud := make([]r3.Vector, len(pts))
	centroid := geometry.Vector3{}
	for i, p := range pts {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(pts)))

	// Epsilon 0 selects the library default, scaled by the cloud's extent.
	ch := new(quickhull.QuickHull).ConvexHull(cloud, true, false, 0)
	if len(ch.Indices) < 12 || len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: hull has %d indices", ErrDegenerateGeometry, len(ch.Indices))
	}

	m := mesh.New("hull")
	for i := 0; i < len(ch.Indices); i += 3 {
		a := vec(ch.Vertices[ch.Indices[i]])
		b := vec(ch.Vertices[ch.Indices[i+1]])
		c := vec(ch.Vertices[ch.Indices[i+2]])

		// The centroid is interior, so every face must point away from it.
		if geometry.FaceNormal(a, b, c).Dot(a.Sub(centroid)) < 0 {
			b, c = c, b
		}
		m.AddTriangle(a, b, c)
	}
	return m, nil
}

func vec(v r3.Vector) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

// Merge drops points that lie within tol of an earlier point. The first
// occurrence wins.
func Merge(points []geometry.Vector3, tol float64) []geometry.Vector3 {
	if tol <= 0 || maxAbs(points)/tol >= cellLimit {
		return mergeExact(points)
	}

	type cell [3]int64
	key := func(p geometry.Vector3) cell {
		return cell{
			int64(math.Floor(p.X / tol)),
			int64(math.Floor(p.Y / tol)),
			int64(math.Floor(p.Z / tol)),
		}
	}

	grid := make(map[cell][]int, len(points))
	out := make([]geometry.Vector3, 0, len(points))

next:
	for _, p := range points {
		k := key(p)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, idx := range grid[cell{k[0] + dx, k[1] + dy, k[2] + dz}] {
						if out[idx].Distance(p) <= tol {
							continue next
						}
					}
				}
			}
		}
		grid[k] = append(grid[k], len(out))
		out = append(out, p)
	}
	return out
}

func mergeExact(points []geometry.Vector3) []geometry.Vector3 {
	seen := make(map[geometry.Vector3]bool, len(points))
	out := make([]geometry.Vector3, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func maxAbs(points []geometry.Vector3) float64 {
	m := 0.0
	for _, p := range points {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z))))
	}
	return m
}

// checkVolume rejects clouds that do not span a volume: it looks for the
// widest pair of axis extremes, the point farthest from their line and a
// point farther than tol from the plane of those three.
func checkVolume(pts []geometry.Vector3, tol float64) error {
	var extremes [6]int
	for i, p := range pts {
		for axis := 0; axis < 3; axis++ {
			if p.Axis(axis) < pts[extremes[axis*2]].Axis(axis) {
				extremes[axis*2] = i
			}
			if p.Axis(axis) > pts[extremes[axis*2+1]].Axis(axis) {
				extremes[axis*2+1] = i
			}
		}
	}

	a, b := 0, 0
	best := -1.0
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			if d := pts[extremes[i]].Distance(pts[extremes[j]]); d > best {
				best, a, b = d, extremes[i], extremes[j]
			}
		}
	}
	if best <= tol {
		return fmt.Errorf("%w: points coincide", ErrDegenerateGeometry)
	}

	dir := pts[b].Sub(pts[a]).Normalize()
	c := -1
	best = tol
	for i, p := range pts {
		rel := p.Sub(pts[a])
		if d := rel.Sub(dir.Mul(rel.Dot(dir))).Length(); d > best {
			best, c = d, i
		}
	}
	if c < 0 {
		return fmt.Errorf("%w: points are collinear", ErrDegenerateGeometry)
	}

	n := geometry.FaceNormal(pts[a], pts[b], pts[c])
	for _, p := range pts {
		if math.Abs(n.Dot(p.Sub(pts[a]))) > tol {
			return nil
		}
	}
	return fmt.Errorf("%w: points are coplanar", ErrDegenerateGeometry)
}
