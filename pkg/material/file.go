package material

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/goslice/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a material file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported material file %q (use .toml, .yaml or .yml)", path)
}

type fileTile struct {
	Offset [2]float64 `toml:"offset" yaml:"offset"`
	Size   [2]float64 `toml:"size" yaml:"size"`
}

type fileMaterial struct {
	ID            string            `toml:"id" yaml:"id"`
	Projection    string            `toml:"projection" yaml:"projection"`
	Size          [3]float64        `toml:"size" yaml:"size"`
	BarkThickness float64           `toml:"bark_thickness,omitempty" yaml:"bark_thickness,omitempty"`
	BarkTiles     map[string][2]int `toml:"bark_tiles,omitempty" yaml:"bark_tiles,omitempty"`
	Tiles         []fileTile        `toml:"tiles" yaml:"tiles"`
}

type file struct {
	Materials []fileMaterial `toml:"material" yaml:"material"`
}

var axisNames = [3]string{"x", "y", "z"}

// LoadFile reads a material index from a TOML or YAML file
func LoadFile(path string) (*Index, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read material file: %w", err)
	}
	ix, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ix, nil
}

// Decode reads a material index
func Decode(r io.Reader, format Format) (*Index, error) {
	var f file
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&f)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
	default:
		err = fmt.Errorf("unknown format %d", int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode materials: %w", err)
	}

	materials := make([]Data, 0, len(f.Materials))
	for i, fm := range f.Materials {
		md, err := fm.data()
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		materials = append(materials, md)
	}
	return NewIndex(materials...)
}

func (fm fileMaterial) data() (Data, error) {
	projection, err := ParseProjection(fm.Projection)
	if err != nil {
		return Data{}, err
	}

	md := Data{
		ID:            ID(fm.ID),
		Projection:    projection,
		Size:          geometry.NewVector3(fm.Size[0], fm.Size[1], fm.Size[2]),
		BarkThickness: fm.BarkThickness,
		BarkTiles:     DefaultBarkTiles(),
	}
	for _, t := range fm.Tiles {
		md.Tiles = append(md.Tiles, Tile{
			Offset: geometry.NewVector2(t.Offset[0], t.Offset[1]),
			Size:   geometry.NewVector2(t.Size[0], t.Size[1]),
		})
	}
	for name, pair := range fm.BarkTiles {
		axis := -1
		for i, n := range axisNames {
			if strings.EqualFold(n, name) {
				axis = i
			}
		}
		if axis < 0 {
			return Data{}, fmt.Errorf("bark_tiles: unknown axis %q", name)
		}
		md.BarkTiles[axis] = TilePair{Bark: TileRole(pair[0]), NoBark: TileRole(pair[1])}
	}
	return md, nil
}

// Encode writes the index in the given format, materials sorted by id
func (ix *Index) Encode(w io.Writer, format Format) error {
	var f file
	for _, id := range ix.IDs() {
		md := ix.materials[id]
		fm := fileMaterial{
			ID:            string(md.ID),
			Projection:    md.Projection.String(),
			Size:          [3]float64{md.Size.X, md.Size.Y, md.Size.Z},
			BarkThickness: md.BarkThickness,
			BarkTiles:     make(map[string][2]int, 3),
		}
		for axis, pair := range md.BarkTiles {
			fm.BarkTiles[axisNames[axis]] = [2]int{int(pair.Bark), int(pair.NoBark)}
		}
		for _, t := range md.Tiles {
			fm.Tiles = append(fm.Tiles, fileTile{
				Offset: [2]float64{t.Offset.X, t.Offset.Y},
				Size:   [2]float64{t.Size.X, t.Size.Y},
			})
		}
		f.Materials = append(f.Materials, fm)
	}

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %d", int(format))
}
