package geometry

import (
	"math"
	"testing"
)

func TestSignedDistance(t *testing.T) {
	q := NewVector3(0, 1, 0)
	n := NewVector3(0, 2, 0) // not unit length

	tests := []struct {
		point    Vector3
		expected float64
	}{
		{NewVector3(5, 1, -3), 0},
		{NewVector3(0, 3, 0), 2},
		{NewVector3(1, -1, 1), -2},
	}

	for _, tt := range tests {
		d := SignedDistance(tt.point, q, n)
		if math.Abs(d-tt.expected) > 1e-10 {
			t.Errorf("SignedDistance failed for %v: expected %v, got %v", tt.point, tt.expected, d)
		}
	}
}

func TestClassifierPartition(t *testing.T) {
	c := NewClassifier(0.01)

	for _, d := range []float64{-1, -0.011, -0.01, -0.005, 0, 0.005, 0.01, 0.011, 1} {
		count := 0
		for _, ok := range []bool{c.InFront(d), c.AtBack(d), c.OnPlane(d)} {
			if ok {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Partition failed for %v: %d predicates matched", d, count)
		}
	}

	if c.Classify(0.02) != Front || c.Classify(-0.02) != Back || c.Classify(0.01) != On {
		t.Errorf("Classify failed: got %v %v %v", c.Classify(0.02), c.Classify(-0.02), c.Classify(0.01))
	}
}

func TestClassifierNegativeTolerance(t *testing.T) {
	c := NewClassifier(-1)
	if c.Tolerance != 0 {
		t.Errorf("Tolerance failed: expected 0, got %v", c.Tolerance)
	}
	if !c.OnPlane(0) {
		t.Errorf("OnPlane failed: 0 should be on the plane")
	}
}

func TestReflectRoundTrip(t *testing.T) {
	plane := NewPlane(NewVector3(0.3, -1, 2), NewVector3(1, 2, -0.5))
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 2, 3),
		NewVector3(-4, 0.5, 7),
	}

	for _, p := range points {
		mirrored := plane.Reflect(p)
		if math.Abs(plane.Distance(mirrored)+plane.Distance(p)) > 1e-9 {
			t.Errorf("Reflect failed: distance %v should negate %v", plane.Distance(mirrored), plane.Distance(p))
		}
		back := plane.Reflect(mirrored)
		if !back.ApproxEqual(p, 1e-9) {
			t.Errorf("Round trip failed: expected %v, got %v", p, back)
		}
	}
}

func TestReflectionMatrixMatchesReflect(t *testing.T) {
	plane := NewPlane(NewVector3(1, 1, 0), NewVector3(0, 1, 1))
	m := plane.ReflectionMatrix()

	for _, p := range []Vector3{NewVector3(0, 0, 0), NewVector3(2, -3, 5), NewVector3(1, 1, 0)} {
		expected := plane.Reflect(p)
		got := Transform(m, p)
		if !got.ApproxEqual(expected, 1e-9) {
			t.Errorf("ReflectionMatrix failed for %v: expected %v, got %v", p, expected, got)
		}
	}
}

func TestPlaneRelative(t *testing.T) {
	plane := NewPlane(NewVector3(2, 0, 0), NewVector3(1, 0, 0))
	local := plane.Relative(NewVector3(1, 0, 0))

	if local.Point != NewVector3(1, 0, 0) {
		t.Errorf("Relative failed: expected %v, got %v", NewVector3(1, 0, 0), local.Point)
	}
	if local.Distance(NewVector3(1, 5, 5)) != 0 {
		t.Errorf("Relative failed: point should lie on the local plane")
	}
}

func TestLerp(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(2, 4, 6)

	if Lerp(a, b, 0.5) != NewVector3(1, 2, 3) {
		t.Errorf("Lerp failed: expected %v, got %v", NewVector3(1, 2, 3), Lerp(a, b, 0.5))
	}
}
