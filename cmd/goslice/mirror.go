package main

import (
	"fmt"

	"github.com/philipparndt/goslice/internal/mirror"
	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/philipparndt/goslice/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	mirrorInput    inputFlags
	mirrorPlane    planeFlags
	mirrorMaterial string
	mirrorWelds    int
	mirrorOut      string
	mirrorSliced   string
	mirrorMirrored string
	mirrorPreview  string
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror [file]",
	Short: "Mirror the kept half of a mesh across the cut plane",
	Long: `Clip the mesh, mirror the kept half across the plane and optionally weld
the result into a new source. Each weld cuts the previous result again, so
--weld 2 with a tilted plane gives a part that is symmetric twice.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)

	mirrorInput.register(mirrorCmd.Flags())
	mirrorPlane.register(mirrorCmd.Flags())
	mirrorCmd.Flags().StringVarP(&mirrorMaterial, "material", "m", "", "Material id for UV projection (none to skip)")
	mirrorCmd.Flags().IntVar(&mirrorWelds, "weld", 0, "Number of cut and weld passes")
	mirrorCmd.Flags().StringVarP(&mirrorOut, "out", "o", "", "Write the source after welding (.obj or .stl)")
	mirrorCmd.Flags().StringVar(&mirrorSliced, "sliced", "", "Write the kept half (.obj or .stl)")
	mirrorCmd.Flags().StringVar(&mirrorMirrored, "mirrored", "", "Write the mirrored half (.obj or .stl)")
	mirrorCmd.Flags().StringVar(&mirrorPreview, "preview", "", "Render the kept and mirrored halves to a PNG")
}

func newMirrorController(cmd *cobra.Command, args []string, in *inputFlags, pf *planeFlags, materialID string) (*mirror.Controller, error) {
	gen, err := in.generator(cmd.Context(), cmd, args)
	if err != nil {
		return nil, err
	}
	plane, err := pf.plane(cmd)
	if err != nil {
		return nil, err
	}
	clipper, err := cfg.Clipper()
	if err != nil {
		return nil, err
	}
	md, err := lookupMaterial(materialID)
	if err != nil {
		return nil, err
	}

	c, err := mirror.NewController(gen)
	if err != nil {
		return nil, err
	}
	c.SetClipper(clipper)
	c.SetProjector(cfg.Projector())
	c.SetPlane(plane.Relative(cfg.Origin()))
	c.SetMaterial(md)
	return c, nil
}

func runMirror(cmd *cobra.Command, args []string) {
	c, err := newMirrorController(cmd, args, &mirrorInput, &mirrorPlane, mirrorMaterial)
	if err != nil {
		fail("Error: %v", err)
	}

	for i := 0; i < mirrorWelds; i++ {
		if err := c.Recompute(); err != nil {
			fail("Error in pass %d: %v", i+1, err)
		}
		if err := c.Weld(); err != nil {
			fail("Error welding pass %d: %v", i+1, err)
		}
	}
	if err := c.Recompute(); err != nil {
		fail("Error: %v", err)
	}

	src := c.Source()
	display := c.Display()
	stats := c.Stats()

	fmt.Println("Mirror Result")
	fmt.Println("=============")
	fmt.Printf("Welds: %d\n", mirrorWelds)
	fmt.Printf("Source: %d triangles, volume %s\n", src.TriangleCount(), analysis.FormatMeasurement(src.Volume(), "cubic units"))
	fmt.Printf("Kept: %d triangles (split: %d, degenerate fragments: %d)\n",
		display.Sliced.TriangleCount(), stats.Split, stats.Degenerate)
	fmt.Printf("Mirrored: %d triangles\n", display.Mirrored.TriangleCount())

	if err := writeMesh(mirrorOut, src); err != nil {
		fail("Error writing source: %v", err)
	}
	if err := writeMesh(mirrorSliced, display.Sliced); err != nil {
		fail("Error writing kept half: %v", err)
	}
	if err := writeMesh(mirrorMirrored, display.Mirrored); err != nil {
		fail("Error writing mirrored half: %v", err)
	}
	if err := writePreview(mirrorPreview, previewLayers(display)...); err != nil {
		fail("Error writing preview: %v", err)
	}
}

func previewLayers(d mirror.Display) []viewer.Layer {
	return []viewer.Layer{
		{Mesh: d.Sliced, Color: viewer.KeptColor},
		{Mesh: d.Mirrored, Color: viewer.OtherColor},
	}
}
