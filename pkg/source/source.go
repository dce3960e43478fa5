// Package source produces the meshes that slicing starts from.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/openscad"
	"github.com/philipparndt/goslice/pkg/stl"
)

// ErrMissingReference means an operation was started without the mesh,
// plane or generator it works on.
var ErrMissingReference = errors.New("missing reference")

// Generator builds a fresh source mesh. Each call returns a new mesh the
// caller may mutate.
type Generator interface {
	Generate() (*mesh.Mesh, error)
}

// BoxGenerator generates a centered box
type BoxGenerator struct {
	Width, Height, Length float64
}

// Generate implements Generator
func (g BoxGenerator) Generate() (*mesh.Mesh, error) {
	if g.Width <= 0 || g.Height <= 0 || g.Length <= 0 {
		return nil, fmt.Errorf("box size must be positive, got %gx%gx%g", g.Width, g.Height, g.Length)
	}
	return mesh.Box(g.Width, g.Height, g.Length), nil
}

// FileGenerator loads a mesh from an STL file or renders an OpenSCAD file
type FileGenerator struct {
	Path string
	// Center moves the bounding box center of the loaded mesh to the origin.
	Center bool
	// Context bounds OpenSCAD rendering; nil means context.Background.
	Context context.Context
}

// Generate implements Generator
func (g FileGenerator) Generate() (*mesh.Mesh, error) {
	var model *stl.Model
	var err error

	switch strings.ToLower(filepath.Ext(g.Path)) {
	case ".stl":
		model, err = stl.Parse(g.Path)
	case ".scad":
		ctx := g.Context
		if ctx == nil {
			ctx = context.Background()
		}
		model, err = openscad.NewRenderer(filepath.Dir(g.Path)).Render(ctx, filepath.Base(g.Path))
	default:
		return nil, fmt.Errorf("unsupported file type %q (use .stl or .scad)", g.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", g.Path, err)
	}

	m := mesh.FromModel(model)
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(g.Path), filepath.Ext(g.Path))
	}
	if g.Center {
		offset := m.Centered()
		m = m.Transformed(mgl64.Translate3D(offset.X, offset.Y, offset.Z))
	}
	return m, nil
}

// Files returns the files whose change should regenerate the mesh
func (g FileGenerator) Files() ([]string, error) {
	if strings.EqualFold(filepath.Ext(g.Path), ".scad") {
		return openscad.NewRenderer(filepath.Dir(g.Path)).ResolveDependencies(filepath.Base(g.Path))
	}
	abs, err := filepath.Abs(g.Path)
	if err != nil {
		return nil, err
	}
	return []string{abs}, nil
}
