package slicing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// ErrInvalidFragmentLength means the clipper produced a polygon that cannot
// come out of clipping one triangle by one plane.
var ErrInvalidFragmentLength = errors.New("invalid fragment length")

// Assembler turns clipped fragments into a flat triangle soup
type Assembler struct {
	Soup []geometry.Vector3
	// Degenerate counts 1- and 2-vertex fragments; they have no area and
	// are dropped.
	Degenerate int
}

// Reset empties the soup but keeps its storage
func (a *Assembler) Reset() {
	a.Soup = a.Soup[:0]
	a.Degenerate = 0
}

// Add appends one fragment. Triangles are copied as-is, quads are split
// into the fan (0,1,2) (0,2,3).
func (a *Assembler) Add(fragment []geometry.Vector3) error {
	switch n := len(fragment); n {
	case 0:
	case 1, 2:
		a.Degenerate++
	case 3:
		a.Soup = append(a.Soup, fragment...)
	case 4:
		a.Soup = append(a.Soup,
			fragment[0], fragment[1], fragment[2],
			fragment[0], fragment[2], fragment[3],
		)
	default:
		return fmt.Errorf("%w: %d vertices", ErrInvalidFragmentLength, n)
	}
	return nil
}

// Stats describes one ClipMesh pass
type Stats struct {
	Triangles  int
	Split      int
	Degenerate int
}

// Fragments holds the clipped triangle soups of both sides. Back is the
// kept piece, Front the severed piece.
type Fragments struct {
	Front []geometry.Vector3
	Back  []geometry.Vector3
	Stats Stats
}

// ClipMesh clips every triangle of m against plane
func ClipMesh(m *mesh.Mesh, plane geometry.Plane, clipper Clipper) (*Fragments, error) {
	if err := plane.Validate(); err != nil {
		return nil, err
	}

	var front, back Assembler
	vertFront := make([]geometry.Vector3, 0, 4)
	vertBack := make([]geometry.Vector3, 0, 4)
	stats := Stats{Triangles: len(m.Triangles)}

	for i, t := range m.Triangles {
		tri := [3]geometry.Vector3{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}

		vertFront, vertBack = clipper.Clip(tri, plane, vertFront[:0], vertBack[:0])
		if len(vertFront) > 0 && len(vertBack) > 0 {
			stats.Split++
		}

		if err := back.Add(vertBack); err != nil {
			return nil, fmt.Errorf("triangle %d back: %w", i, err)
		}
		if err := front.Add(vertFront); err != nil {
			return nil, fmt.Errorf("triangle %d front: %w", i, err)
		}
	}

	stats.Degenerate = front.Degenerate + back.Degenerate
	if stats.Degenerate > 0 {
		slog.Debug("dropped degenerate fragments",
			"count", stats.Degenerate, "policy", clipper.Policy.String())
	}

	return &Fragments{Front: front.Soup, Back: back.Soup, Stats: stats}, nil
}
