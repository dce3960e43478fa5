package geometry

import (
	"math"
	"testing"
)

// rightTriangle has legs 3 and 4 along X and Y
func rightTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

func TestTriangleMeasures(t *testing.T) {
	tri := rightTriangle()

	if area := tri.Area(); math.Abs(area-6) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
	if p := tri.Perimeter(); math.Abs(p-12) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", p)
	}

	lengths := tri.EdgeLengths()
	for i, expected := range [3]float64{3, 5, 4} {
		if math.Abs(lengths[i]-expected) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected, lengths[i])
		}
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 3, 0))

	if center := tri.Center(); center != NewVector3(1, 1, 0) {
		t.Errorf("Center failed: expected (1,1,0), got %v", center)
	}
}

func TestTriangleVertices(t *testing.T) {
	tri := rightTriangle()
	v := tri.Vertices()
	if v[0] != tri.V1 || v[1] != tri.V2 || v[2] != tri.V3 {
		t.Errorf("Vertices failed: got %v", v)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1))

	volume := tri.SignedVolume(Vector3{})
	if math.Abs(volume-1.0/6.0) > 1e-10 {
		t.Errorf("SignedVolume failed: expected %v, got %v", 1.0/6.0, volume)
	}

	// The apex on the other side flips the sign
	if flipped := tri.SignedVolume(NewVector3(1, 1, 1)); flipped >= 0 {
		t.Errorf("SignedVolume from outside should be negative, got %v", flipped)
	}
}

func TestFaceNormalWinding(t *testing.T) {
	ccw := FaceNormal(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if ccw != NewVector3(0, 0, 1) {
		t.Errorf("FaceNormal failed: expected (0,0,1), got %v", ccw)
	}

	cw := FaceNormal(NewVector3(0, 0, 0), NewVector3(0, 1, 0), NewVector3(1, 0, 0))
	if cw != NewVector3(0, 0, -1) {
		t.Errorf("FaceNormal of reversed winding failed: expected (0,0,-1), got %v", cw)
	}

	if calc := rightTriangle().CalculateNormal(); calc != NewVector3(0, 0, 1) {
		t.Errorf("CalculateNormal failed: got %v", calc)
	}
}
