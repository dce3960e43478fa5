// Package uvmap assigns texture atlas coordinates to mesh faces.
package uvmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// Default angular thresholds in degrees
const (
	DefaultHorizontalThreshold = 85.0
	DefaultAlignedThreshold    = 2.0
)

// ErrAtlasIndexOutOfRange means a projection picked a tile the material's
// atlas does not have.
var ErrAtlasIndexOutOfRange = errors.New("atlas index out of range")

// AtlasIndexError names the material and tile of an out-of-range lookup
type AtlasIndexError struct {
	Material material.ID
	Tile     material.TileRole
	Tiles    int
}

func (e *AtlasIndexError) Error() string {
	return fmt.Sprintf("material %s: tile %d (%s) out of range, atlas has %d tiles",
		e.Material, int(e.Tile), e.Tile, e.Tiles)
}

func (e *AtlasIndexError) Unwrap() error {
	return ErrAtlasIndexOutOfRange
}

// Projector maps faces to atlas tiles. A face within HorizontalThreshold
// degrees of ±Y is horizontal; any other face must lie within
// AlignedThreshold degrees of ±X or ±Z to be mapped.
type Projector struct {
	HorizontalThreshold float64
	AlignedThreshold    float64
}

// NewProjector returns a projector with the default thresholds
func NewProjector() Projector {
	return Projector{
		HorizontalThreshold: DefaultHorizontalThreshold,
		AlignedThreshold:    DefaultAlignedThreshold,
	}
}

// Stats summarizes one Apply call
type Stats struct {
	Faces    int
	Mapped   int
	Unmapped int
	Roles    map[Role]int
}

// Apply writes one UV per vertex of m. The UV buffer starts zeroed; faces
// that match no axis keep zero UVs. If a vertex is shared by several faces
// the last face wins. On error m is left unchanged.
func (p Projector) Apply(m *mesh.Mesh, md material.Data) (Stats, error) {
	var tileFor func(tri [3]geometry.Vector3, role Role) material.TileRole
	switch md.Projection {
	case material.ProjectionAxis:
		tileFor = func(_ [3]geometry.Vector3, role Role) material.TileRole { return axisTile(role) }
	case material.ProjectionBark:
		tileFor = func(tri [3]geometry.Vector3, role Role) material.TileRole { return barkTile(tri, role.Axis(), md) }
	default:
		return Stats{}, fmt.Errorf("material %s: unknown projection %s", md.ID, md.Projection)
	}

	stats := Stats{Faces: len(m.Triangles), Roles: make(map[Role]int)}
	uvs := make([]geometry.Vector2, len(m.Vertices))

	for i, t := range m.Triangles {
		tri := [3]geometry.Vector3{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}

		role := p.Classify(geometry.FaceNormal(tri[0], tri[1], tri[2]))
		stats.Roles[role]++
		if role == Oblique {
			stats.Unmapped++
			continue
		}

		local := project(tri, role.Axis(), md)
		tile, err := lookupTile(md, tileFor(tri, role))
		if err != nil {
			return Stats{}, fmt.Errorf("triangle %d: %w", i, err)
		}

		for k, idx := range t {
			uvs[idx] = remap(local[k], tile)
		}
		stats.Mapped++
	}

	m.UVs = uvs
	return stats, nil
}

// Project returns the normalized [0,1] coordinates of tri before atlas
// remapping, and false for faces that match no axis.
func (p Projector) Project(tri [3]geometry.Vector3, md material.Data) ([3]geometry.Vector2, bool) {
	role := p.Classify(geometry.FaceNormal(tri[0], tri[1], tri[2]))
	if role == Oblique {
		return [3]geometry.Vector2{}, false
	}
	return project(tri, role.Axis(), md), true
}

// project drops the given axis and normalizes the two remaining coordinates
// by the material size: horizontal faces use (X, Z), faces along X use
// (Z, Y), faces along Z use (X, Y).
func project(tri [3]geometry.Vector3, axis int, md material.Data) [3]geometry.Vector2 {
	var ua, va int
	switch axis {
	case 0:
		ua, va = 2, 1
	case 1:
		ua, va = 0, 2
	default:
		ua, va = 0, 1
	}

	half := md.HalfSize()
	var out [3]geometry.Vector2
	for k, pt := range tri {
		out[k] = geometry.NewVector2(
			(pt.Axis(ua)+half.Axis(ua))/md.Size.Axis(ua),
			(pt.Axis(va)+half.Axis(va))/md.Size.Axis(va),
		)
	}
	return out
}

func axisTile(role Role) material.TileRole {
	if role.Horizontal() {
		return material.EdgeNoBark
	}
	return material.SideBark
}

// barkTile picks the bark tile when the face centroid lies within the bark
// band at either end of the aligned axis.
func barkTile(tri [3]geometry.Vector3, axis int, md material.Data) material.TileRole {
	pair := md.BarkTiles[axis]
	c := (tri[0].Axis(axis) + tri[1].Axis(axis) + tri[2].Axis(axis)) / 3
	if math.Abs(c) >= md.HalfSize().Axis(axis)-md.BarkThickness {
		return pair.Bark
	}
	return pair.NoBark
}

func lookupTile(md material.Data, role material.TileRole) (material.Tile, error) {
	if role < 0 || int(role) >= len(md.Tiles) {
		return material.Tile{}, &AtlasIndexError{Material: md.ID, Tile: role, Tiles: len(md.Tiles)}
	}
	return md.Tiles[role], nil
}

// remap places a normalized UV inside the tile rectangle, flipping V
func remap(uv geometry.Vector2, tile material.Tile) geometry.Vector2 {
	return geometry.NewVector2(
		tile.Offset.X+uv.X*tile.Size.X,
		tile.Offset.Y+(1-uv.Y)*tile.Size.Y,
	)
}
