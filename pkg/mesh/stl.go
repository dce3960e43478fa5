package mesh

import (
	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/stl"
)

// FromModel converts an STL model into a mesh. STL facets never share
// vertices, so neither does the result. Stored facet normals are dropped
// and recomputed from the winding.
func FromModel(model *stl.Model) *Mesh {
	m := New(model.Name)
	for _, t := range model.Triangles {
		m.AddTriangle(t.V1, t.V2, t.V3)
	}
	return m
}

// ToModel converts the mesh into an STL model with computed facet normals
func (m *Mesh) ToModel() *stl.Model {
	model := stl.NewModel(m.Name)
	for i := range m.Triangles {
		model.AddTriangle(m.Triangle(i))
	}
	return model
}

// Centered returns the offset that moves the bounding box center to the
// origin; UV projection assumes material space is centered.
func (m *Mesh) Centered() geometry.Vector3 {
	return m.BoundingBox().Center().Mul(-1)
}
