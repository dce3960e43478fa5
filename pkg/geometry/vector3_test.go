package geometry

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vector3
		expected Vector3
	}{
		{"Add", a.Add(b), NewVector3(5, 7, 9)},
		{"Sub", b.Sub(a), NewVector3(3, 3, 3)},
		{"Mul", a.Mul(-2), NewVector3(-2, -4, -6)},
		{"Cross", NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)), NewVector3(0, 0, 1)},
		{"Min", NewVector3(1, 5, -1).Min(NewVector3(2, 0, -3)), NewVector3(1, 0, -3)},
		{"Max", NewVector3(1, 5, -1).Max(NewVector3(2, 0, -3)), NewVector3(2, 5, -1)},
		{"Lerp", Lerp(a, b, 0.5), NewVector3(2.5, 3.5, 4.5)},
		{"Mathgl", FromVec3(a.Vec3()), a},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s failed: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}

	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Dot failed: expected 32, got %v", dot)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	if math.Abs(v.Length()-5) > 1e-10 {
		t.Errorf("Length failed: expected 5, got %v", v.Length())
	}
	if d := NewVector3(1, 1, 1).Distance(NewVector3(4, 5, 1)); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}

func TestVector3Normalize(t *testing.T) {
	n := NewVector3(0, -7, 0).Normalize()
	if n != NewVector3(0, -1, 0) {
		t.Errorf("Normalize failed: expected (0,-1,0), got %v", n)
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestVector3Axis(t *testing.T) {
	v := NewVector3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d) failed: expected %v, got %v", axis, expected, got)
		}
	}
}

func TestVector3ApproxEqual(t *testing.T) {
	a := NewVector3(1, 1, 1)
	if !a.ApproxEqual(NewVector3(1+1e-7, 1, 1-1e-7), 1e-6) {
		t.Error("ApproxEqual should accept differences within tolerance")
	}
	if a.ApproxEqual(NewVector3(1, 1, 1.1), 1e-6) {
		t.Error("ApproxEqual should reject differences beyond tolerance")
	}
}
