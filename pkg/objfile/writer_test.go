package objfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(name string) *mesh.Mesh {
	m := mesh.New(name)
	m.AddTriangle(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	)
	return m
}

func TestWriteWithoutUVs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, triangle("tri")))

	out := buf.String()
	assert.Contains(t, out, "o tri\n")
	assert.Contains(t, out, "v 1 0 0\n")
	assert.Contains(t, out, "vn 0 0 1\n")
	assert.Contains(t, out, "f 1//1 2//1 3//1\n")
	assert.NotContains(t, out, "vt")
}

func TestWriteOffsetsSecondObject(t *testing.T) {
	a := triangle("a")
	b := triangle("b")
	b.UVs = []geometry.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a, nil, b))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "f 4/1/2 5/2/2 6/3/2", lines[len(lines)-1])
	assert.Contains(t, buf.String(), "vt 0.5 1\n")
}

func TestWriteRejectsInvalidMesh(t *testing.T) {
	m := triangle("broken")
	m.Triangles[0][2] = 7

	assert.Error(t, Write(&bytes.Buffer{}, m))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.obj")
	require.NoError(t, WriteFile(path, mesh.Box(1, 1, 1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, strings.Count(string(data), "\nf "))
	assert.Equal(t, 36, strings.Count(string(data), "\nv "))
}
