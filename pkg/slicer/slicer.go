// Package slicer cuts a mesh in two and closes both pieces.
package slicer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/hull"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/slicing"
	"github.com/philipparndt/goslice/pkg/source"
	"github.com/philipparndt/goslice/pkg/uvmap"
)

// Options configures Slice
type Options struct {
	Clipper       slicing.Clipper
	HullTolerance float64
	Projector     uvmap.Projector
	// Material, when set, is projected onto both pieces.
	Material *material.Data
}

// DefaultOptions returns the options used by the CLI without a config file
func DefaultOptions() Options {
	return Options{
		Clipper:       slicing.NewClipper(geometry.DefaultTolerance, slicing.OnPlaneFrontDuplicateBack),
		HullTolerance: hull.DefaultTolerance,
		Projector:     uvmap.NewProjector(),
	}
}

// Result holds both pieces of a cut. A piece is nil when nothing with a
// volume lies on its side.
type Result struct {
	Kept      *mesh.Mesh
	Severed   *mesh.Mesh
	Stats     slicing.Stats
	KeptUV    uvmap.Stats
	SeveredUV uvmap.Stats
}

// Slice cuts m, whose local origin sits at origin in world space, with a
// plane given in world space. The part behind the plane is kept, the part in
// front is severed. Each part is closed with its convex hull.
func Slice(m *mesh.Mesh, origin geometry.Vector3, plane geometry.Plane, opts Options) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no mesh to slice", source.ErrMissingReference)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh %s: %w", m.Name, err)
	}

	local := plane.Relative(origin)
	frags, err := slicing.ClipMesh(m, local, opts.Clipper)
	if err != nil {
		return nil, err
	}

	res := &Result{Stats: frags.Stats}
	if res.Kept, res.KeptUV, err = closePiece(m.Name+"_kept", frags.Back, opts); err != nil {
		return nil, fmt.Errorf("kept piece: %w", err)
	}
	if res.Severed, res.SeveredUV, err = closePiece(m.Name+"_severed", frags.Front, opts); err != nil {
		return nil, fmt.Errorf("severed piece: %w", err)
	}

	slog.Debug("sliced mesh", "mesh", m.Name,
		"triangles", frags.Stats.Triangles, "split", frags.Stats.Split,
		"kept", res.Kept != nil, "severed", res.Severed != nil)
	return res, nil
}

func closePiece(name string, soup []geometry.Vector3, opts Options) (*mesh.Mesh, uvmap.Stats, error) {
	if len(soup) == 0 {
		return nil, uvmap.Stats{}, nil
	}

	piece, err := hull.Reconstruct(soup, opts.HullTolerance)
	if errors.Is(err, hull.ErrDegenerateGeometry) {
		slog.Debug("skipping piece without volume", "piece", name, "error", err)
		return nil, uvmap.Stats{}, nil
	}
	if err != nil {
		return nil, uvmap.Stats{}, err
	}
	piece.Name = name

	var stats uvmap.Stats
	if opts.Material != nil {
		if stats, err = opts.Projector.Apply(piece, *opts.Material); err != nil {
			return nil, uvmap.Stats{}, err
		}
	}
	return piece, stats, nil
}
