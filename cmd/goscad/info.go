package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goscad/pkg/analysis"
	"github.com/philipparndt/goscad/pkg/geometry"
	"github.com/philipparndt/goscad/pkg/mesh"
	"github.com/philipparndt/goscad/pkg/stl"
)

var infoCheck bool

var infoCmd = &cobra.Command{
	Use:   "info [file.stl]",
	Short: "Display information about an STL file",
	Long:  "Show dimensions, triangle count, surface area and edge statistics; optionally verify closed-manifold topology.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoCheck, "check", false, "verify the mesh is a closed manifold")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, "units"))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, "units"))
	fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, "units"))

	if infoCheck {
		fmt.Println()
		if err := checkManifold(model); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// checkManifold rebuilds an indexed mesh from the parsed triangle soup
// and verifies its edge sharing
func checkManifold(model *stl.Model) error {
	indices := make(map[geometry.Vector3]int)
	var vertices []geometry.Vector3
	var faces [][]int

	index := func(v geometry.Vector3) int {
		if i, ok := indices[v]; ok {
			return i
		}
		i := len(vertices)
		vertices = append(vertices, v)
		indices[v] = i
		return i
	}

	for _, triangle := range model.Triangles {
		faces = append(faces, []int{
			index(triangle.V1),
			index(triangle.V2),
			index(triangle.V3),
		})
	}

	m, err := mesh.New(vertices, faces)
	if err != nil {
		return err
	}

	report := analysis.CheckManifold(m)
	fmt.Println("Topology:")
	fmt.Printf("  Edges: %d\n", report.EdgeCount)
	fmt.Printf("  Boundary edges: %d\n", report.BoundaryEdges)
	fmt.Printf("  Non-manifold edges: %d\n", report.NonManifoldEdges)
	if report.Closed() {
		fmt.Println("  Closed manifold: yes")
	} else {
		fmt.Println("  Closed manifold: no")
	}
	return nil
}
