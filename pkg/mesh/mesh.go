package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goslice/pkg/geometry"
)

// Mesh is a vertex buffer plus a triangle index buffer. UVs, when present,
// hold one pair per vertex. Normals, bounds and volume are derived on demand
// and never stored.
type Mesh struct {
	Name      string
	Vertices  []geometry.Vector3
	Triangles [][3]uint32
	UVs       []geometry.Vector2
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]geometry.Vector3, 0),
		Triangles: make([][3]uint32, 0),
	}
}

// FromSoup builds a mesh from a flat triangle soup (every three consecutive
// points form one triangle) with trivial indices 0..n-1. A trailing partial
// triangle is ignored.
func FromSoup(name string, soup []geometry.Vector3) *Mesh {
	n := len(soup) - len(soup)%3
	m := &Mesh{
		Name:      name,
		Vertices:  make([]geometry.Vector3, n),
		Triangles: make([][3]uint32, 0, n/3),
	}
	copy(m.Vertices, soup[:n])
	for i := 0; i < n; i += 3 {
		m.Triangles = append(m.Triangles, [3]uint32{uint32(i), uint32(i + 1), uint32(i + 2)})
	}
	return m
}

// AddTriangle appends a triangle with its own three vertices
func (m *Mesh) AddTriangle(a, b, c geometry.Vector3) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, a, b, c)
	m.Triangles = append(m.Triangles, [3]uint32{base, base + 1, base + 2})
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle returns the i-th triangle with its face normal filled in
func (m *Mesh) Triangle(i int) geometry.Triangle {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return geometry.NewTriangle(geometry.FaceNormal(a, b, c), a, b, c)
}

// Validate checks that every index refers to a vertex and that the UV
// buffer, if any, matches the vertex buffer.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx >= n {
				return fmt.Errorf("triangle %d: index %d out of range (%d vertices)", i, idx, n)
			}
		}
	}
	if m.UVs != nil && len(m.UVs) != len(m.Vertices) {
		return fmt.Errorf("uv buffer has %d entries for %d vertices", len(m.UVs), len(m.Vertices))
	}
	return nil
}

// Soup flattens the mesh into consecutive triangle corners
func (m *Mesh) Soup() []geometry.Vector3 {
	soup := make([]geometry.Vector3, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		soup = append(soup, m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
	}
	return soup
}

// Clone returns a deep copy
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:      m.Name,
		Vertices:  append([]geometry.Vector3(nil), m.Vertices...),
		Triangles: append([][3]uint32(nil), m.Triangles...),
	}
	if m.UVs != nil {
		c.UVs = append([]geometry.Vector2(nil), m.UVs...)
	}
	return c
}

// Transformed returns a copy with every vertex transformed by mat
func (m *Mesh) Transformed(mat mgl64.Mat4) *Mesh {
	c := m.Clone()
	for i, v := range c.Vertices {
		c.Vertices[i] = geometry.Transform(mat, v)
	}
	return c
}

// FaceNormals returns one unit normal per triangle
func (m *Mesh) FaceNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Triangles))
	for i := range m.Triangles {
		normals[i] = m.Triangle(i).Normal
	}
	return normals
}

// VertexNormals returns area-weighted normals per vertex. With unshared
// vertices this equals the face normal of the owning triangle.
func (m *Mesh) VertexNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Vertices))
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, idx := range t {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// BoundingBox calculates the bounding box of the referenced vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		for _, idx := range t {
			bbox.Extend(m.Vertices[idx])
		}
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Triangles {
		total += m.Triangle(i).Area()
	}
	return total
}

// Volume returns the enclosed volume of a closed, outward-wound mesh
func (m *Mesh) Volume() float64 {
	return m.VolumeAbout(geometry.Vector3{})
}

// VolumeAbout sums the signed tetrahedron volumes with the given apex. For an
// open mesh whose only hole lies in a plane through apex (a kept piece before
// it is re-closed), this is still the volume of the solid it bounds.
func (m *Mesh) VolumeAbout(apex geometry.Vector3) float64 {
	total := 0.0
	for i := range m.Triangles {
		total += m.Triangle(i).SignedVolume(apex)
	}
	return total
}
