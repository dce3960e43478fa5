// Package viewer renders meshes into images without a window, for quick
// previews of cut and mirrored parts.
package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goslice/pkg/geometry"
)

// Camera orbits a target point
type Camera struct {
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a camera looking at bbox from a three-quarter view
func NewCamera(bbox geometry.BoundingBox) *Camera {
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 1
	}

	return &Camera{
		Target:    bbox.Center(),
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		RotationX: math.Pi / 6,
		RotationY: math.Pi / 4,
	}
}

// Position returns the eye position from the spherical coordinates
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// Viewport maps world points to pixels for one image size
type Viewport struct {
	matrix        mgl64.Mat4
	width, height float64
}

// Viewport returns the projection for a width x height image
func (c *Camera) Viewport(width, height int) Viewport {
	eye := c.Position()
	view := mgl64.LookAtV(eye.Vec3(), c.Target.Vec3(), c.Up.Vec3())
	proj := mgl64.Perspective(c.FOV, float64(width)/float64(height), c.Distance*0.01, c.Distance*10)
	return Viewport{matrix: proj.Mul4(view), width: float64(width), height: float64(height)}
}

// Project returns pixel coordinates and view depth of p. ok is false for
// points behind the camera.
func (v Viewport) Project(p geometry.Vector3) (x, y, depth float64, ok bool) {
	clip := v.matrix.Mul4x1(p.Vec3().Vec4(1))
	if clip[3] <= 1e-9 {
		return 0, 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	x = (ndcX + 1) / 2 * v.width
	y = (1 - ndcY) / 2 * v.height
	return x, y, clip[3], true
}
