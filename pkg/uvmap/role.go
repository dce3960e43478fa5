package uvmap

import (
	"math"

	"github.com/philipparndt/goslice/pkg/geometry"
)

// Role is the orientation class of a face
type Role int

const (
	Oblique Role = iota
	Top
	Bottom
	Left
	Right
	Front
	Back
)

var roleNames = [...]string{"oblique", "top", "bottom", "left", "right", "front", "back"}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Horizontal reports whether the face projects along Y
func (r Role) Horizontal() bool {
	return r == Top || r == Bottom
}

// Axis returns the axis the face projects along, or -1 for oblique faces
func (r Role) Axis() int {
	switch r {
	case Left, Right:
		return 0
	case Top, Bottom:
		return 1
	case Front, Back:
		return 2
	}
	return -1
}

// Classify returns the role of a face with the given normal
func (p Projector) Classify(normal geometry.Vector3) Role {
	n := normal.Normalize()
	if n.Length() == 0 {
		return Oblique
	}

	if math.Abs(n.Y) >= cosDeg(p.HorizontalThreshold) {
		if n.Y > 0 {
			return Top
		}
		return Bottom
	}

	aligned := cosDeg(p.AlignedThreshold)
	switch {
	case math.Abs(n.X) >= aligned:
		if n.X > 0 {
			return Right
		}
		return Left
	case math.Abs(n.Z) >= aligned:
		if n.Z > 0 {
			return Front
		}
		return Back
	}
	return Oblique
}

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}
