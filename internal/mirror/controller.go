// Package mirror implements the cut, preview and weld loop: the source mesh
// is clipped by a plane, the kept half is mirrored across it, and a weld
// makes the symmetric result the new source.
package mirror

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/slicing"
	"github.com/philipparndt/goslice/pkg/source"
	"github.com/philipparndt/goslice/pkg/uvmap"
)

var (
	// ErrMissingReference means the source mesh or the plane is not set.
	ErrMissingReference = source.ErrMissingReference
	// ErrNothingToWeld means Weld was called without a fresh Recompute.
	ErrNothingToWeld = errors.New("nothing to weld")
)

// Controller owns the source mesh. Recompute, Weld and ClearBuffers are
// mutually exclusive; only Weld and ClearBuffers change the source.
type Controller struct {
	mu sync.Mutex

	generator source.Generator
	clipper   slicing.Clipper
	projector uvmap.Projector

	source   *mesh.Mesh
	plane    *geometry.Plane
	material *material.Data

	// Results of the last successful Recompute
	kept     []geometry.Vector3
	mirrored []geometry.Vector3
	stats    slicing.Stats
	display  Display
	weldable bool
}

// Display holds the meshes shown after a Recompute
type Display struct {
	Sliced   *mesh.Mesh
	Mirrored *mesh.Mesh
	Severed  *mesh.Mesh
}

// NewController creates a controller whose source comes from gen
func NewController(gen source.Generator) (*Controller, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: generator", ErrMissingReference)
	}
	src, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate source: %w", err)
	}
	return &Controller{
		generator: gen,
		clipper:   slicing.DefaultClipper(),
		projector: uvmap.NewProjector(),
		source:    src,
	}, nil
}

// SetPlane sets the plane pose used by the next Recompute
func (c *Controller) SetPlane(p geometry.Plane) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plane = &p
}

// SetMaterial binds a material for UV projection; nil disables it
func (c *Controller) SetMaterial(md *material.Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if md == nil {
		c.material = nil
		return
	}
	cp := *md
	cp.Tiles = append([]material.Tile(nil), md.Tiles...)
	c.material = &cp
}

// SetClipper replaces the clipper
func (c *Controller) SetClipper(cl slicing.Clipper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clipper = cl
}

// SetProjector replaces the UV projector
func (c *Controller) SetProjector(p uvmap.Projector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projector = p
}

// Recompute clips the source, mirrors the kept half and rebuilds the display
// meshes. On error the previous display meshes stay in place.
func (c *Controller) Recompute() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.source == nil {
		return fmt.Errorf("%w: source mesh", ErrMissingReference)
	}
	if c.plane == nil {
		return fmt.Errorf("%w: plane", ErrMissingReference)
	}
	plane := *c.plane

	frags, err := slicing.ClipMesh(c.source, plane, c.clipper)
	if err != nil {
		return err
	}
	mirrored := Mirror(frags.Back, plane)

	name := c.source.Name
	display := Display{
		Sliced:   mesh.FromSoup(name+"_sliced", frags.Back),
		Mirrored: mesh.FromSoup(name+"_mirrored", mirrored),
		Severed:  mesh.FromSoup(name+"_severed", frags.Front),
	}
	if c.material != nil {
		for _, m := range []*mesh.Mesh{display.Sliced, display.Mirrored, display.Severed} {
			if _, err := c.projector.Apply(m, *c.material); err != nil {
				return err
			}
		}
	}

	c.kept = frags.Back
	c.mirrored = mirrored
	c.stats = frags.Stats
	c.display = display
	c.weldable = true

	slog.Debug("recomputed", "mesh", name, "kept", len(frags.Back)/3,
		"severed", len(frags.Front)/3, "degenerate", frags.Stats.Degenerate)
	return nil
}

// Weld makes the kept half plus its mirror image the new source
func (c *Controller) Weld() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.weldable {
		return ErrNothingToWeld
	}

	soup := make([]geometry.Vector3, 0, len(c.kept)+len(c.mirrored))
	soup = append(soup, c.kept...)
	soup = append(soup, c.mirrored...)
	c.source = mesh.FromSoup(c.source.Name, soup)
	c.weldable = false

	slog.Debug("welded", "mesh", c.source.Name, "triangles", c.source.TriangleCount())
	return nil
}

// ClearBuffers drops every derived buffer and regenerates the source
func (c *Controller) ClearBuffers() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, err := c.generator.Generate()
	if err != nil {
		return fmt.Errorf("failed to regenerate source: %w", err)
	}

	c.source = src
	c.kept, c.mirrored = nil, nil
	c.stats = slicing.Stats{}
	c.display = Display{}
	c.weldable = false
	return nil
}

// Source returns a copy of the current source mesh
func (c *Controller) Source() *mesh.Mesh {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.source == nil {
		return nil
	}
	return c.source.Clone()
}

// Display returns the meshes of the last successful Recompute. The meshes
// are replaced, never modified, by later calls.
func (c *Controller) Display() Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

// Stats returns the clipping statistics of the last successful Recompute
func (c *Controller) Stats() slicing.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Mirror reflects a triangle soup across plane. Reflection flips
// handedness, so each triangle is emitted in reverse order to stay
// outward-facing.
func Mirror(soup []geometry.Vector3, plane geometry.Plane) []geometry.Vector3 {
	m := plane.ReflectionMatrix()
	out := make([]geometry.Vector3, 0, len(soup)-len(soup)%3)
	for i := 0; i+2 < len(soup); i += 3 {
		out = append(out,
			geometry.Transform(m, soup[i+2]),
			geometry.Transform(m, soup[i+1]),
			geometry.Transform(m, soup[i]),
		)
	}
	return out
}
