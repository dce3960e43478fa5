package mesh

import "github.com/philipparndt/goslice/pkg/geometry"

// Box generates an axis-aligned box centered on the origin. Every triangle
// owns its three vertices so faces can carry independent UVs. Triangles are
// wound counter-clockwise seen from outside.
func Box(width, height, length float64) *Mesh {
	x, y, z := width*0.5, height*0.5, length*0.5

	// Corners: l/r = -x/+x, b/t = -y/+y, k/f = -z/+z (back/front)
	lbk := geometry.NewVector3(-x, -y, -z)
	rbk := geometry.NewVector3(x, -y, -z)
	ltk := geometry.NewVector3(-x, y, -z)
	rtk := geometry.NewVector3(x, y, -z)
	lbf := geometry.NewVector3(-x, -y, z)
	rbf := geometry.NewVector3(x, -y, z)
	ltf := geometry.NewVector3(-x, y, z)
	rtf := geometry.NewVector3(x, y, z)

	quads := [6][4]geometry.Vector3{
		{ltk, ltf, rtf, rtk}, // top    +y
		{lbk, rbk, rbf, lbf}, // bottom -y
		{lbk, lbf, ltf, ltk}, // left   -x
		{rbk, rtk, rtf, rbf}, // right  +x
		{lbf, rbf, rtf, ltf}, // front  +z
		{lbk, ltk, rtk, rbk}, // back   -z
	}

	m := New("box")
	for _, q := range quads {
		m.AddTriangle(q[0], q[1], q[2])
		m.AddTriangle(q[0], q[2], q[3])
	}
	return m
}
