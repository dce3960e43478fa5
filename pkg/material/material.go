// Package material describes texture atlases and how faces are projected
// into them.
package material

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goslice/pkg/geometry"
)

// ID identifies a material in an Index
type ID string

const (
	Wood     ID = "wood"
	WoodBark ID = "wood_bark"
)

// Projection selects the UV projection applied to a material
type Projection int

const (
	// ProjectionAxis projects every face along its cardinal axis.
	ProjectionAxis Projection = iota
	// ProjectionBark projects like ProjectionAxis but picks the bark tile
	// for faces close to the outside of the log.
	ProjectionBark
)

func (p Projection) String() string {
	switch p {
	case ProjectionAxis:
		return "axis"
	case ProjectionBark:
		return "bark"
	}
	return fmt.Sprintf("Projection(%d)", int(p))
}

// ParseProjection resolves a projection name
func ParseProjection(name string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "axis", "box", "projection":
		return ProjectionAxis, nil
	case "bark":
		return ProjectionBark, nil
	}
	return 0, fmt.Errorf("unknown projection %q", name)
}

// TileRole indexes the tile atlas
type TileRole int

const (
	SideBark TileRole = iota
	SideNoBark
	EdgeBark
	EdgeNoBark
)

func (r TileRole) String() string {
	switch r {
	case SideBark:
		return "side-bark"
	case SideNoBark:
		return "side"
	case EdgeBark:
		return "edge-bark"
	case EdgeNoBark:
		return "edge"
	}
	return fmt.Sprintf("tile %d", int(r))
}

// Tile is a rectangle in normalized atlas space
type Tile struct {
	Offset geometry.Vector2
	Size   geometry.Vector2
}

// TilePair holds the tiles used for one axis by the bark projection
type TilePair struct {
	Bark   TileRole
	NoBark TileRole
}

// Data is the read-only description of one material
type Data struct {
	ID         ID
	Projection Projection
	// Size is the physical extent the projection normalizes against.
	Size  geometry.Vector3
	Tiles []Tile
	// BarkThickness is the band, measured inward from either extreme of the
	// half size, that counts as bark.
	BarkThickness float64
	// BarkTiles is indexed by axis (0=X, 1=Y, 2=Z).
	BarkTiles [3]TilePair
}

// DefaultBarkTiles maps side faces (X, Z) to the side tiles and horizontal
// faces (Y) to the edge tiles.
func DefaultBarkTiles() [3]TilePair {
	side := TilePair{Bark: SideBark, NoBark: SideNoBark}
	edge := TilePair{Bark: EdgeBark, NoBark: EdgeNoBark}
	return [3]TilePair{side, edge, side}
}

// HalfSize returns half of the physical size
func (d Data) HalfSize() geometry.Vector3 {
	return d.Size.Mul(0.5)
}

// Validate checks that the material can be projected with
func (d Data) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("material has no id")
	}
	if d.Size.X <= 0 || d.Size.Y <= 0 || d.Size.Z <= 0 {
		return fmt.Errorf("material %s: size must be positive, got %v", d.ID, d.Size)
	}
	if d.Projection != ProjectionAxis && d.Projection != ProjectionBark {
		return fmt.Errorf("material %s: unknown projection %d", d.ID, int(d.Projection))
	}
	if d.BarkThickness < 0 {
		return fmt.Errorf("material %s: negative bark thickness", d.ID)
	}
	return nil
}

func (d Data) clone() Data {
	d.Tiles = append([]Tile(nil), d.Tiles...)
	return d
}
