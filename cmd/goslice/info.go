package main

import (
	"fmt"

	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoInput inputFlags

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh",
	Long:  "Show dimensions, triangle count, surface area, volume, closedness and edge statistics.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoInput.register(infoCmd.Flags())
}

func runInfo(cmd *cobra.Command, args []string) {
	m, err := infoInput.load(cmd, args)
	if err != nil {
		fail("Error loading mesh: %v", err)
	}

	result := analysis.Analyze(m)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	if len(args) > 0 {
		fmt.Printf("File: %s\n", args[0])
	}
	fmt.Println()

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Closed: %t", result.Closed())
	if result.OpenEdges > 0 {
		fmt.Printf(" (%d open edges)", result.OpenEdges)
	}
	fmt.Println()
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Length (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Box Volume: %.6f cubic units\n", result.BoundingBox.Volume())
	if result.Closed() {
		fmt.Printf("  Volume: %.6f cubic units\n", result.Volume)
	}
	fmt.Println()

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
