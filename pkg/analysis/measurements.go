// Package analysis measures meshes for the info and edges commands.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// Report contains the measurements of a mesh
type Report struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	VertexCount   int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	// OpenEdges counts edges with no opposite edge; zero means the surface
	// is closed.
	OpenEdges int
	AllEdges  []EdgeInfo
}

// Closed reports whether every edge is shared by two faces
func (r *Report) Closed() bool {
	return r.TriangleCount > 0 && r.OpenEdges == 0
}

// Analyze measures m. Volume is the signed enclosed volume and only
// meaningful for closed meshes.
func Analyze(m *mesh.Mesh) *Report {
	r := &Report{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		Volume:        m.Volume(),
		TriangleCount: m.TriangleCount(),
		VertexCount:   len(m.Vertices),
		AllEdges:      make([]EdgeInfo, 0, m.TriangleCount()*3),
	}
	r.Dimensions = r.BoundingBox.Size()

	type key [2]geometry.Vector3
	directed := make(map[key]int, m.TriangleCount()*3)

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := range m.Triangles {
		vs := m.Triangle(i).Vertices()
		for k := 0; k < 3; k++ {
			start, end := vs[k], vs[(k+1)%3]
			length := start.Distance(end)

			r.AllEdges = append(r.AllEdges, EdgeInfo{
				Start:      start,
				End:        end,
				Length:     length,
				TriangleID: i,
			})
			directed[key{start, end}]++

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	for e, n := range directed {
		if twin := directed[key{e[1], e[0]}]; twin < n {
			r.OpenEdges += n - twin
		}
	}

	r.EdgeCount = len(r.AllEdges)
	if r.EdgeCount > 0 {
		r.MinEdgeLength = minLength
		r.MaxEdgeLength = maxLength
		r.AvgEdgeLength = totalLength / float64(r.EdgeCount)
	}
	return r
}

// EdgesByLength finds all edges within a length range
func (r *Report) EdgesByLength(minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range r.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// LongestEdges returns the N longest edges
func (r *Report) LongestEdges(count int) []EdgeInfo {
	return r.sortedEdges(count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// ShortestEdges returns the N shortest edges
func (r *Report) ShortestEdges(count int) []EdgeInfo {
	return r.sortedEdges(count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func (r *Report) sortedEdges(count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(r.AllEdges))
	copy(edges, r.AllEdges)
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// NearestVertex finds the vertex of m nearest to point
func NearestVertex(m *mesh.Mesh, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64
	for _, v := range m.Vertices {
		if d := point.Distance(v); d < minDistance {
			minDistance = d
			nearest = v
		}
	}
	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
