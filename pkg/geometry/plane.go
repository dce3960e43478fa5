package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance is the half-width of the on-plane band used by Classifier
const DefaultTolerance = 1e-6

// Plane is a slice plane given by a point on it and its forward direction.
// Points on the positive side of Normal are "in front" (the severed piece),
// points on the negative side are "at the back" (the kept piece).
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane from a point and a forward direction
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal}
}

// Validate reports whether the plane has a usable normal
func (p Plane) Validate() error {
	if p.Normal.Length() == 0 {
		return fmt.Errorf("plane normal must not be zero")
	}
	return nil
}

// SignedDistance returns the signed distance from p to the plane through q
// with normal n. The normal does not need to be unit length.
func SignedDistance(p, q, n Vector3) float64 {
	return p.Sub(q).Dot(n) / n.Length()
}

// Distance returns the signed distance from point to the plane
func (p Plane) Distance(point Vector3) float64 {
	return SignedDistance(point, p.Point, p.Normal)
}

// Relative re-expresses the plane in the local frame of a mesh whose origin
// sits at origin in world space.
func (p Plane) Relative(origin Vector3) Plane {
	return Plane{Point: p.Point.Sub(origin), Normal: p.Normal}
}

// Reflect mirrors point across the plane: p + n * dist(p) * -2
func (p Plane) Reflect(point Vector3) Vector3 {
	n := p.Normal.Normalize()
	return point.Add(n.Mul(p.Distance(point) * -2))
}

// ReflectionMatrix returns the affine transform that mirrors points across
// the plane: (I - 2nnᵀ)x + 2(n·q)n.
func (p Plane) ReflectionMatrix() mgl64.Mat4 {
	n := p.Normal.Normalize()
	d := n.Dot(p.Point)
	nv := [3]float64{n.X, n.Y, n.Z}

	m := mgl64.Ident4()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[col*4+row] -= 2 * nv[row] * nv[col]
		}
		m[12+row] = 2 * d * nv[row]
	}
	return m
}

// Transform applies an affine matrix to a point
func Transform(m mgl64.Mat4, point Vector3) Vector3 {
	return FromVec3(mgl64.TransformCoordinate(point.Vec3(), m))
}

// Side is the three-way classification of a point against a plane
type Side int

const (
	Back Side = iota - 1
	On
	Front
)

func (s Side) String() string {
	switch s {
	case Back:
		return "back"
	case Front:
		return "front"
	default:
		return "on"
	}
}

// Classifier partitions signed distances into front, back and on-plane
// using a symmetric tolerance band around zero.
type Classifier struct {
	Tolerance float64
}

// NewClassifier returns a classifier; negative tolerances are clamped to 0
func NewClassifier(tolerance float64) Classifier {
	if tolerance < 0 {
		tolerance = 0
	}
	return Classifier{Tolerance: tolerance}
}

// InFront reports d > tolerance
func (c Classifier) InFront(d float64) bool {
	return d > c.Tolerance
}

// AtBack reports d < -tolerance
func (c Classifier) AtBack(d float64) bool {
	return d < -c.Tolerance
}

// OnPlane reports |d| <= tolerance
func (c Classifier) OnPlane(d float64) bool {
	return !c.InFront(d) && !c.AtBack(d)
}

// Classify returns the side of a signed distance
func (c Classifier) Classify(d float64) Side {
	switch {
	case c.InFront(d):
		return Front
	case c.AtBack(d):
		return Back
	default:
		return On
	}
}
