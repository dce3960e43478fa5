package stl

import (
	"bytes"
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel(name string) *Model {
	m := NewModel(name)
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, -1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(1, 0, 0),
	))
	return m
}

func TestASCIIRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, sampleModel("part")))

	model, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "part", model.Name)
	assert.Equal(t, sampleModel("part").Triangles, model.Triangles)
}

// Binary files whose header starts with "solid" must not be taken for ASCII.
func TestBinaryWithSolidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, sampleModel("solid exported by cad")))

	model, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, "solid exported by cad", model.Name)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), model.Triangles[0].V2)
}

func TestASCIIRejectsBrokenFacet(t *testing.T) {
	data := "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n"

	_, err := Read(bytes.NewBufferString(data))
	assert.Error(t, err)
}
