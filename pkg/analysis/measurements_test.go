package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/goscad/pkg/geometry"
	"github.com/philipparndt/goscad/pkg/mesh"
	"github.com/philipparndt/goscad/pkg/stl"
)

func TestAnalyzeBox(t *testing.T) {
	m, err := mesh.BuildHeightField(mesh.HeightFieldSpec{
		Heights: [][]float64{{1, 1}, {1, 1}},
		Base:    -1,
	})
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}
	model := stl.FromMesh(m, "box")

	result := AnalyzeModel(model)

	if result.TriangleCount != 12 {
		t.Errorf("expected 12 triangles, got %d", result.TriangleCount)
	}
	if result.EdgeCount != 36 {
		t.Errorf("expected 36 edges, got %d", result.EdgeCount)
	}
	// 2 faces of 1x1 plus 4 faces of 1x2
	if math.Abs(result.SurfaceArea-10) > 1e-9 {
		t.Errorf("expected surface area 10, got %v", result.SurfaceArea)
	}
	if math.Abs(result.Dimensions.Z-2) > 1e-10 {
		t.Errorf("expected height 2, got %v", result.Dimensions.Z)
	}
	if result.MinEdgeLength <= 0 {
		t.Errorf("expected positive minimum edge length, got %v", result.MinEdgeLength)
	}
	if result.MaxEdgeLength < result.MinEdgeLength {
		t.Errorf("max edge %v smaller than min edge %v", result.MaxEdgeLength, result.MinEdgeLength)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, 2.5, -3))
	expected := "(1.000000, 2.500000, -3.000000)"
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
