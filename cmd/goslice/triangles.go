package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goslice/pkg/analysis"
	"github.com/philipparndt/goslice/pkg/uvmap"
	"github.com/spf13/cobra"
)

var (
	triInput    inputFlags
	triCount    int
	triLargest  bool
	triSmallest bool
	triRole     string
)

type triangleInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Role      uvmap.Role
	Vertices  string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles in a mesh",
	Long:  "Display area, perimeter, face orientation and vertex positions of triangles.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	triInput.register(trianglesCmd.Flags())
	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
	trianglesCmd.Flags().StringVar(&triRole, "role", "", "Only show faces with this orientation (top, bottom, left, right, front, back, oblique)")
}

func runTriangles(cmd *cobra.Command, args []string) {
	m, err := triInput.load(cmd, args)
	if err != nil {
		fail("Error loading mesh: %v", err)
	}
	projector := cfg.Projector()

	triangles := make([]triangleInfo, 0, m.TriangleCount())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0

	for i := range m.Triangles {
		tri := m.Triangle(i)
		role := projector.Classify(tri.Normal)
		if triRole != "" && role.String() != triRole {
			continue
		}

		area := tri.Area()
		triangles = append(triangles, triangleInfo{
			Index:     i,
			Area:      area,
			Perimeter: tri.Perimeter(),
			Role:      role,
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.V1),
				analysis.FormatVector(tri.V2),
				analysis.FormatVector(tri.V3)),
		})

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}

	if len(triangles) == 0 {
		fmt.Println("No triangles found matching the criteria.")
		return
	}

	var title string
	switch {
	case triLargest:
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area > triangles[j].Area })
		title = fmt.Sprintf("Top %d Largest Triangles", triCount)
	case triSmallest:
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area < triangles[j].Area })
		title = fmt.Sprintf("Top %d Smallest Triangles", triCount)
	default:
		title = fmt.Sprintf("First %d Triangles", triCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d\n", len(triangles))
	fmt.Printf("Total surface area: %.6f square units\n", totalArea)
	fmt.Printf("Min triangle area: %.6f square units\n", minArea)
	fmt.Printf("Max triangle area: %.6f square units\n", maxArea)
	fmt.Printf("Avg triangle area: %.6f square units\n\n", totalArea/float64(len(triangles)))

	for i := 0; i < triCount && i < len(triangles); i++ {
		tri := triangles[i]
		fmt.Printf("Triangle #%d (%s):\n", tri.Index, tri.Role)
		fmt.Printf("  Area: %.6f square units\n", tri.Area)
		fmt.Printf("  Perimeter: %.6f units\n", tri.Perimeter)
		fmt.Printf("  Vertices: %s\n\n", tri.Vertices)
	}
}
