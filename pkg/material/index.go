package material

import (
	"errors"
	"fmt"
	"sort"

	"github.com/philipparndt/goslice/pkg/geometry"
)

// ErrUnknownMaterial is returned by Lookup for ids that are not indexed
var ErrUnknownMaterial = errors.New("unknown material")

// Index is an immutable lookup table of materials. It is built once and
// passed to whatever needs material data; Lookup hands out copies.
type Index struct {
	materials map[ID]Data
}

// NewIndex validates and indexes the given materials
func NewIndex(materials ...Data) (*Index, error) {
	ix := &Index{materials: make(map[ID]Data, len(materials))}
	for _, md := range materials {
		if err := md.Validate(); err != nil {
			return nil, err
		}
		if _, ok := ix.materials[md.ID]; ok {
			return nil, fmt.Errorf("duplicate material %s", md.ID)
		}
		ix.materials[md.ID] = md.clone()
	}
	return ix, nil
}

// Lookup returns a copy of the material with the given id
func (ix *Index) Lookup(id ID) (Data, error) {
	md, ok := ix.materials[id]
	if !ok {
		return Data{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, id)
	}
	return md.clone(), nil
}

// IDs returns the indexed ids in sorted order
func (ix *Index) IDs() []ID {
	ids := make([]ID, 0, len(ix.materials))
	for id := range ix.materials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of materials
func (ix *Index) Len() int {
	return len(ix.materials)
}

// WoodTiles is the four-tile atlas shared by the default materials: one
// 0.25×1 column per TileRole.
func WoodTiles() []Tile {
	size := geometry.NewVector2(0.25, 1)
	return []Tile{
		SideBark:   {Offset: geometry.NewVector2(0.00, 0), Size: size},
		SideNoBark: {Offset: geometry.NewVector2(0.25, 0), Size: size},
		EdgeBark:   {Offset: geometry.NewVector2(0.50, 0), Size: size},
		EdgeNoBark: {Offset: geometry.NewVector2(0.75, 0), Size: size},
	}
}

// Default returns the built-in materials
func Default() *Index {
	ix, err := NewIndex(
		Data{
			ID:         Wood,
			Projection: ProjectionAxis,
			Size:       geometry.NewVector3(1, 2, 1),
			Tiles:      WoodTiles(),
			BarkTiles:  DefaultBarkTiles(),
		},
		Data{
			ID:            WoodBark,
			Projection:    ProjectionBark,
			Size:          geometry.NewVector3(1, 2, 1),
			Tiles:         WoodTiles(),
			BarkThickness: 0.0625,
			BarkTiles:     DefaultBarkTiles(),
		},
	)
	if err != nil {
		panic(err)
	}
	return ix
}
