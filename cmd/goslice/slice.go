package main

import (
	"fmt"

	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/slicer"
	"github.com/philipparndt/goslice/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	sliceInput    inputFlags
	slicePlane    planeFlags
	sliceMaterial string
	sliceKept     string
	sliceSevered  string
	slicePreview  string
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Cut a mesh in two and close both pieces",
	Long: `Cut the mesh with the plane. The part behind the plane is kept, the part in
front of it is severed. Both parts are closed with their convex hull and get
UVs from the material.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceInput.register(sliceCmd.Flags())
	slicePlane.register(sliceCmd.Flags())
	sliceCmd.Flags().StringVarP(&sliceMaterial, "material", "m", "", "Material id for UV projection (none to skip)")
	sliceCmd.Flags().StringVar(&sliceKept, "kept", "", "Write the kept piece (.obj or .stl)")
	sliceCmd.Flags().StringVar(&sliceSevered, "severed", "", "Write the severed piece (.obj or .stl)")
	sliceCmd.Flags().StringVar(&slicePreview, "preview", "", "Render both pieces to a PNG")
}

func runSlice(cmd *cobra.Command, args []string) {
	m, err := sliceInput.load(cmd, args)
	if err != nil {
		fail("Error loading mesh: %v", err)
	}
	plane, err := slicePlane.plane(cmd)
	if err != nil {
		fail("Error in plane: %v", err)
	}

	opts := slicer.DefaultOptions()
	if opts.Clipper, err = cfg.Clipper(); err != nil {
		fail("Error in config: %v", err)
	}
	opts.HullTolerance = cfg.Slicer.HullTolerance
	opts.Projector = cfg.Projector()
	if opts.Material, err = lookupMaterial(sliceMaterial); err != nil {
		fail("Error in material: %v", err)
	}

	res, err := slicer.Slice(m, cfg.Origin(), plane, opts)
	if err != nil {
		fail("Error slicing %s: %v", m.Name, err)
	}

	fmt.Println("Slice Result")
	fmt.Println("============")
	fmt.Printf("Plane: %s -> %s\n", analysis.FormatVector(plane.Point), analysis.FormatVector(plane.Normal))
	fmt.Printf("Triangles: %d (split: %d, degenerate fragments: %d)\n\n",
		res.Stats.Triangles, res.Stats.Split, res.Stats.Degenerate)
	printPiece("Kept", res.Kept)
	printPiece("Severed", res.Severed)

	if err := writeMesh(sliceKept, res.Kept); err != nil {
		fail("Error writing kept piece: %v", err)
	}
	if err := writeMesh(sliceSevered, res.Severed); err != nil {
		fail("Error writing severed piece: %v", err)
	}
	err = writePreview(slicePreview,
		viewer.Layer{Mesh: res.Kept, Color: viewer.KeptColor},
		viewer.Layer{Mesh: res.Severed, Color: viewer.OtherColor})
	if err != nil {
		fail("Error writing preview: %v", err)
	}
}

func printPiece(label string, m *mesh.Mesh) {
	if m == nil {
		fmt.Printf("%s: none\n", label)
		return
	}
	bbox := m.BoundingBox()
	fmt.Printf("%s: %d triangles, volume %s\n", label, m.TriangleCount(), analysis.FormatMeasurement(m.Volume(), "cubic units"))
	fmt.Printf("  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(bbox.Max))
}
