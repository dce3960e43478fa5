package material

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIndex(t *testing.T) {
	ix := Default()
	assert.Equal(t, []ID{Wood, WoodBark}, ix.IDs())

	wood, err := ix.Lookup(Wood)
	require.NoError(t, err)
	assert.Equal(t, ProjectionAxis, wood.Projection)
	assert.Equal(t, geometry.NewVector3(0.5, 1, 0.5), wood.HalfSize())
	require.Len(t, wood.Tiles, 4)
	assert.Equal(t, geometry.NewVector2(0.75, 0), wood.Tiles[EdgeNoBark].Offset)

	bark, err := ix.Lookup(WoodBark)
	require.NoError(t, err)
	assert.Equal(t, ProjectionBark, bark.Projection)
	assert.Equal(t, 0.0625, bark.BarkThickness)
	assert.Equal(t, TilePair{Bark: EdgeBark, NoBark: EdgeNoBark}, bark.BarkTiles[1])
}

func TestLookupReturnsCopies(t *testing.T) {
	ix := Default()

	md, err := ix.Lookup(Wood)
	require.NoError(t, err)
	md.Tiles[0].Offset = geometry.NewVector2(9, 9)

	again, err := ix.Lookup(Wood)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector2(0, 0), again.Tiles[0].Offset)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("granite")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMaterial))
	assert.Contains(t, err.Error(), "granite")
}

func TestNewIndexRejectsInvalid(t *testing.T) {
	_, err := NewIndex(Data{ID: "flat", Size: geometry.NewVector3(1, 0, 1)})
	assert.Error(t, err)

	ok := Data{ID: "a", Size: geometry.NewVector3(1, 1, 1)}
	_, err = NewIndex(ok, ok)
	assert.Error(t, err)
}

func TestParseProjection(t *testing.T) {
	p, err := ParseProjection("Bark")
	require.NoError(t, err)
	assert.Equal(t, ProjectionBark, p)

	p, err = ParseProjection("axis")
	require.NoError(t, err)
	assert.Equal(t, ProjectionAxis, p)

	_, err = ParseProjection("spherical")
	assert.Error(t, err)
}

func TestDecodeTOML(t *testing.T) {
	src := `
[[material]]
id = "oak"
projection = "bark"
size = [2, 1, 1]
bark_thickness = 0.1
bark_tiles = { y = [0, 1] }

[[material.tiles]]
offset = [0, 0]
size = [0.5, 1]

[[material.tiles]]
offset = [0.5, 0]
size = [0.5, 1]
`
	ix, err := Decode(strings.NewReader(src), FormatTOML)
	require.NoError(t, err)

	oak, err := ix.Lookup("oak")
	require.NoError(t, err)
	assert.Equal(t, ProjectionBark, oak.Projection)
	assert.Equal(t, geometry.NewVector3(2, 1, 1), oak.Size)
	assert.Equal(t, 0.1, oak.BarkThickness)
	assert.Len(t, oak.Tiles, 2)
	assert.Equal(t, TilePair{Bark: SideBark, NoBark: SideNoBark}, oak.BarkTiles[1])
	assert.Equal(t, DefaultBarkTiles()[0], oak.BarkTiles[0])
}

func TestDecodeYAML(t *testing.T) {
	src := `
material:
  - id: pine
    projection: axis
    size: [1, 1, 1]
    tiles:
      - offset: [0, 0]
        size: [1, 1]
`
	ix, err := Decode(strings.NewReader(src), FormatYAML)
	require.NoError(t, err)

	pine, err := ix.Lookup("pine")
	require.NoError(t, err)
	assert.Equal(t, ProjectionAxis, pine.Projection)
	assert.Len(t, pine.Tiles, 1)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("[[material]]\nid = \"x\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("material:\n  - id: x\n    colour: red\n"), FormatYAML)
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Default().Encode(&buf, format))

		ix, err := Decode(&buf, format)
		require.NoError(t, err)
		for _, id := range Default().IDs() {
			want, _ := Default().Lookup(id)
			got, err := ix.Lookup(id)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "materials.yml")
	require.NoError(t, os.WriteFile(path, []byte("material:\n  - id: birch\n    projection: axis\n    size: [1, 2, 1]\n    tiles: []\n"), 0o644))

	ix, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []ID{"birch"}, ix.IDs())

	_, err = LoadFile(filepath.Join(dir, "materials.json"))
	assert.Error(t, err)
}
