package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/objfile"
	"github.com/philipparndt/goslice/pkg/source"
	"github.com/philipparndt/goslice/pkg/stl"
	"github.com/philipparndt/goslice/pkg/viewer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// inputFlags selects the source mesh of a command
type inputFlags struct {
	box    []float64
	center bool
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&f.box, "box", nil, "Generate a box of width,height,length instead of reading a file")
	fs.BoolVar(&f.center, "center", false, "Center the loaded mesh on its bounding box")
}

func (f *inputFlags) generator(ctx context.Context, cmd *cobra.Command, args []string) (source.Generator, error) {
	if len(args) > 0 && cmd.Flags().Changed("box") {
		return nil, fmt.Errorf("use either a file or --box, not both")
	}
	if len(args) > 0 {
		return source.FileGenerator{
			Path:    args[0],
			Center:  f.center || cfg.Source.Center,
			Context: ctx,
		}, nil
	}

	gen := cfg.BoxGenerator()
	if cmd.Flags().Changed("box") {
		if len(f.box) != 3 {
			return nil, fmt.Errorf("--box needs width,height,length")
		}
		gen = source.BoxGenerator{Width: f.box[0], Height: f.box[1], Length: f.box[2]}
	}
	return gen, nil
}

func (f *inputFlags) load(cmd *cobra.Command, args []string) (*mesh.Mesh, error) {
	gen, err := f.generator(cmd.Context(), cmd, args)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}

// planeFlags overrides the configured cut plane
type planeFlags struct {
	position []float64
	normal   []float64
}

func (f *planeFlags) register(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&f.position, "plane-pos", nil, "Point on the cut plane x,y,z")
	fs.Float64SliceVar(&f.normal, "plane-normal", nil, "Cut plane normal x,y,z, pointing at the severed side")
}

func (f *planeFlags) plane(cmd *cobra.Command) (geometry.Plane, error) {
	plane := cfg.CutPlane()
	if cmd.Flags().Changed("plane-pos") {
		v, err := vectorFlag("plane-pos", f.position)
		if err != nil {
			return plane, err
		}
		plane.Point = v
	}
	if cmd.Flags().Changed("plane-normal") {
		v, err := vectorFlag("plane-normal", f.normal)
		if err != nil {
			return plane, err
		}
		plane.Normal = v
	}
	return plane, plane.Validate()
}

func vectorFlag(name string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs three values, got %d", name, len(values))
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}

// lookupMaterial resolves id, or the configured material when id is empty
func lookupMaterial(id string) (*material.Data, error) {
	if id == "" {
		id = cfg.Material.ID
	}
	if id == "" || id == "none" {
		return nil, nil
	}
	ix, err := cfg.Materials()
	if err != nil {
		return nil, err
	}
	md, err := ix.Lookup(material.ID(id))
	if err != nil {
		return nil, err
	}
	return &md, nil
}

// writeMesh writes m as OBJ or binary STL depending on the extension.
// Empty paths are skipped.
func writeMesh(path string, m *mesh.Mesh) error {
	if path == "" {
		return nil
	}
	if m == nil {
		return fmt.Errorf("nothing to write to %s", path)
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		err = objfile.WriteFile(path, m)
	case ".stl":
		err = stl.WriteFile(path, m.ToModel(), false)
	default:
		err = fmt.Errorf("unsupported output %q (use .obj or .stl)", path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d triangles)\n", path, m.TriangleCount())
	return nil
}

// writePreview renders the layers to a PNG. Empty paths are skipped.
func writePreview(path string, layers ...viewer.Layer) error {
	if path == "" {
		return nil
	}
	img, err := viewer.Render(nil, viewer.DefaultOptions(), layers...)
	if err != nil {
		return err
	}
	if err := viewer.WritePNG(path, img); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
