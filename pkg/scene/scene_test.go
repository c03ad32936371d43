package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goscad/pkg/geometry"
	"github.com/philipparndt/goscad/pkg/mesh"
)

func TestParseAndBuildTube(t *testing.T) {
	doc := []byte(`
name: elbow
tube:
  points:
    - [0, 0, 0]
    - [10, 0, 0]
    - [10, 10, 0]
  radius: 2
  fn: 8
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Name != "elbow" {
		t.Errorf("expected name elbow, got %q", s.Name)
	}

	m, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := 8*2 + 2
	if m.FaceCount() != expected {
		t.Errorf("expected %d faces, got %d", expected, m.FaceCount())
	}
}

func TestParseRequiresExactlyOneShape(t *testing.T) {
	if _, err := Parse([]byte("name: empty\n")); err == nil {
		t.Errorf("expected error for scene without a shape")
	}

	doc := []byte(`
tube:
  points: [[0,0,0],[1,0,0]]
  radius: 1
  fn: 8
heightmap:
  heights: [[1,1],[1,1]]
`)
	if _, err := Parse(doc); err == nil {
		t.Errorf("expected error for scene with two shapes")
	}
}

func TestBuildRejectsWrongDimension(t *testing.T) {
	doc := []byte(`
tube:
  points:
    - [0, 0]
    - [10, 0]
  radius: 1
  fn: 8
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = s.Build()
	if !errors.Is(err, geometry.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestBuildPropagatesBuilderErrors(t *testing.T) {
	doc := []byte(`
heightmap:
  heights: [[1, 1]]
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = s.Build()
	if !errors.Is(err, mesh.ErrDegenerateGrid) {
		t.Errorf("expected ErrDegenerateGrid, got %v", err)
	}
}

func TestBuildHeightMapInline(t *testing.T) {
	doc := []byte(`
heightmap:
  heights:
    - [0, 1]
    - [1, 2]
  base: -1
  step_x: 2
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	m, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}
}

func TestBuildHeightMapFromCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "heights.csv")
	if err := os.WriteFile(csvPath, []byte("0,1,0\n1,2,1\n0,1,0\n"), 0o644); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}

	scenePath := filepath.Join(dir, "scene.yaml")
	doc := []byte("name: terrain\nheightmap:\n  csv: heights.csv\n  base: -1\n")
	if err := os.WriteFile(scenePath, doc, 0o644); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}

	s, err := Load(scenePath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	m, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// 3x3 grid, top and bottom vertices
	if m.VertexCount() != 18 {
		t.Errorf("expected 18 vertices, got %d", m.VertexCount())
	}
}

func TestLoadHeightsCSVRejectsBadCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("0,1\nx,2\n"), 0o644); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}

	if _, err := LoadHeightsCSV(path); err == nil {
		t.Errorf("expected error for non-numeric cell")
	}
}

func TestBuildGridScene(t *testing.T) {
	doc := []byte(`
grid:
  points:
    - [[1,0,0],[0,1,0],[-1,0,0],[0,-1,0]]
    - [[1,0,2],[0,1,2],[-1,0,2],[0,-1,2]]
  row_closed: true
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	m, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// 4 side quads plus 2 caps
	if m.FaceCount() != 6 {
		t.Errorf("expected 6 faces, got %d", m.FaceCount())
	}
}
