// Package objfile writes meshes as Wavefront OBJ, keeping texture
// coordinates that STL cannot carry.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goslice/pkg/mesh"
)

// WriteFile writes one or more meshes to filename, one object each
func WriteFile(filename string, meshes ...*mesh.Mesh) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	err = Write(f, meshes...)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close file: %w", cerr)
	}
	return err
}

// Write encodes the meshes. Indices in OBJ are 1-based and global across
// objects, so every mesh is offset by the elements written before it. Each
// face gets one normal, the face normal.
func Write(w io.Writer, meshes ...*mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# goslice")

	var vOff, vtOff, vnOff int
	for _, m := range meshes {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mesh %s: %w", m.Name, err)
		}

		name := m.Name
		if name == "" {
			name = "mesh"
		}
		fmt.Fprintf(bw, "o %s\n", name)

		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, uv := range m.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
		normals := m.FaceNormals()
		for _, n := range normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}

		hasUV := len(m.UVs) > 0
		for i, t := range m.Triangles {
			fmt.Fprint(bw, "f")
			for _, idx := range t {
				v := vOff + int(idx) + 1
				vn := vnOff + i + 1
				if hasUV {
					fmt.Fprintf(bw, " %d/%d/%d", v, vtOff+int(idx)+1, vn)
				} else {
					fmt.Fprintf(bw, " %d//%d", v, vn)
				}
			}
			fmt.Fprintln(bw)
		}

		vOff += len(m.Vertices)
		vtOff += len(m.UVs)
		vnOff += len(normals)
	}

	return bw.Flush()
}
