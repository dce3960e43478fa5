// Package slicing clips triangles against a plane and reassembles the
// resulting fragments into triangle soups for each side.
package slicing

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goslice/pkg/geometry"
)

// OnPlanePolicy decides where a vertex lying on the plane is emitted
type OnPlanePolicy int

const (
	// OnPlaneBoth emits an on-plane vertex to both fragments.
	OnPlaneBoth OnPlanePolicy = iota
	// OnPlaneFront emits an on-plane vertex to the front fragment only. A
	// following back vertex re-emits it to the back.
	OnPlaneFront
	// OnPlaneFrontDuplicateBack behaves like OnPlaneFront and additionally
	// emits the current vertex to the back when the previous one was on the
	// plane as well.
	OnPlaneFrontDuplicateBack
)

var policyNames = map[OnPlanePolicy]string{
	OnPlaneBoth:               "both",
	OnPlaneFront:              "front",
	OnPlaneFrontDuplicateBack: "front-duplicate-back",
}

func (p OnPlanePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("OnPlanePolicy(%d)", int(p))
}

// ParsePolicy resolves a policy name as written in config files
func ParsePolicy(name string) (OnPlanePolicy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return OnPlaneBoth, fmt.Errorf("unknown on-plane policy %q", name)
}

// Clipper splits triangles against a plane (Sutherland–Hodgman on a
// single triangle).
type Clipper struct {
	Classifier geometry.Classifier
	Policy     OnPlanePolicy
}

// NewClipper returns a clipper with the given tolerance and policy
func NewClipper(tolerance float64, policy OnPlanePolicy) Clipper {
	return Clipper{Classifier: geometry.NewClassifier(tolerance), Policy: policy}
}

// DefaultClipper uses geometry.DefaultTolerance and OnPlaneBoth
func DefaultClipper() Clipper {
	return NewClipper(geometry.DefaultTolerance, OnPlaneBoth)
}

// Clip walks the triangle's edges, starting with the edge from the last
// vertex to the first, and appends the part in front of the plane to front
// and the part behind it to back. Both fragments keep the input winding.
func (c Clipper) Clip(tri [3]geometry.Vector3, plane geometry.Plane, front, back []geometry.Vector3) ([]geometry.Vector3, []geometry.Vector3) {
	prev := tri[2]
	distPrev := plane.Distance(prev)

	for _, cur := range tri {
		distCur := plane.Distance(cur)

		switch {
		case c.Classifier.InFront(distCur):
			if c.Classifier.AtBack(distPrev) {
				vi := geometry.Lerp(cur, prev, distCur/(distCur-distPrev))
				front = append(front, vi)
				back = append(back, vi)
			}
			front = append(front, cur)

		case c.Classifier.AtBack(distCur):
			if c.Classifier.InFront(distPrev) {
				vi := geometry.Lerp(prev, cur, distPrev/(distPrev-distCur))
				front = append(front, vi)
				back = append(back, vi)
			} else if c.Classifier.OnPlane(distPrev) && c.Policy != OnPlaneBoth {
				back = append(back, prev)
			}
			back = append(back, cur)

		default:
			front = append(front, cur)
			switch c.Policy {
			case OnPlaneBoth:
				back = append(back, cur)
			case OnPlaneFrontDuplicateBack:
				if c.Classifier.OnPlane(distPrev) {
					back = append(back, cur)
				}
			}
		}

		prev = cur
		distPrev = distCur
	}

	return front, back
}
