package main

import (
	"fmt"

	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/philipparndt/goslice/pkg/hull"
	"github.com/spf13/cobra"
)

var (
	hullInput inputFlags
	hullOut   string
)

var hullCmd = &cobra.Command{
	Use:   "hull [file]",
	Short: "Replace a mesh by its convex hull",
	Args:  cobra.MaximumNArgs(1),
	Run:   runHull,
}

func init() {
	rootCmd.AddCommand(hullCmd)

	hullInput.register(hullCmd.Flags())
	hullCmd.Flags().StringVarP(&hullOut, "out", "o", "", "Write the hull (.obj or .stl)")
}

func runHull(cmd *cobra.Command, args []string) {
	m, err := hullInput.load(cmd, args)
	if err != nil {
		fail("Error loading mesh: %v", err)
	}

	h, err := hull.Reconstruct(m.Vertices, cfg.Slicer.HullTolerance)
	if err != nil {
		fail("Error building hull of %s: %v", m.Name, err)
	}
	h.Name = m.Name + "_hull"

	before, after := analysis.Analyze(m), analysis.Analyze(h)
	fmt.Println("Convex Hull")
	fmt.Println("===========")
	fmt.Printf("Input: %d triangles, %d vertices\n", before.TriangleCount, before.VertexCount)
	fmt.Printf("Hull: %d triangles, closed: %t\n", after.TriangleCount, after.Closed())
	fmt.Printf("Volume: %s\n", analysis.FormatMeasurement(after.Volume, "cubic units"))
	if before.Closed() && after.Volume > 0 {
		fmt.Printf("Convexity: %.2f%%\n", 100*before.Volume/after.Volume)
	}

	if err := writeMesh(hullOut, h); err != nil {
		fail("Error writing hull: %v", err)
	}
}
