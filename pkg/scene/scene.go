// Package scene loads YAML shape descriptions and builds meshes from
// them. A scene file names exactly one shape: a swept tube, a raw
// point grid, or a height map.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/goscad/pkg/geometry"
	"github.com/philipparndt/goscad/pkg/mesh"
)

// Scene is a single-shape build description
type Scene struct {
	Name      string         `yaml:"name"`
	Tube      *TubeSpec      `yaml:"tube"`
	Grid      *GridSpec      `yaml:"grid"`
	HeightMap *HeightMapSpec `yaml:"heightmap"`

	// dir is the scene file's directory, for resolving relative
	// paths like a height map CSV
	dir string
}

// TubeSpec sweeps a circular cross section along a path
type TubeSpec struct {
	Points   [][]float64 `yaml:"points"`
	Radius   float64     `yaml:"radius"`
	Radii    []float64   `yaml:"radii"`
	FN       int         `yaml:"fn"`
	Closed   bool        `yaml:"closed"`

	// SeamOffset rotates the ring joint at a closed path's seam
	SeamOffset int  `yaml:"seam_offset"`
	Uncapped   bool `yaml:"uncapped"`
}

// GridSpec stitches a 2D grid of points
type GridSpec struct {
	Points     [][][]float64 `yaml:"points"`
	RowClosed  bool          `yaml:"row_closed"`
	ColClosed  bool          `yaml:"col_closed"`
	SeamOffset int           `yaml:"seam_offset"`
	Uncapped   bool          `yaml:"uncapped"`
}

// HeightMapSpec builds a solid block from a height matrix, either
// inline or from a CSV file
type HeightMapSpec struct {
	Heights [][]float64 `yaml:"heights"`
	CSV     string      `yaml:"csv"`
	Base    float64     `yaml:"base"`
	StepX   float64     `yaml:"step_x"`
	StepY   float64     `yaml:"step_y"`
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse parses a YAML scene description
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	shapes := 0
	for _, set := range []bool{s.Tube != nil, s.Grid != nil, s.HeightMap != nil} {
		if set {
			shapes++
		}
	}
	if shapes != 1 {
		return nil, fmt.Errorf("scene must define exactly one of tube, grid, heightmap; got %d", shapes)
	}

	return &s, nil
}

// Build runs the matching mesh builder for the scene's shape
func (s *Scene) Build() (*mesh.Mesh, error) {
	switch {
	case s.Tube != nil:
		points, err := toVectors(s.Tube.Points)
		if err != nil {
			return nil, err
		}
		return mesh.BuildPath(mesh.PathSpec{
			Points:     points,
			Radius:     s.Tube.Radius,
			Radii:      s.Tube.Radii,
			FN:         s.Tube.FN,
			Closed:     s.Tube.Closed,
			SeamOffset: s.Tube.SeamOffset,
			Uncapped:   s.Tube.Uncapped,
		})

	case s.Grid != nil:
		rows := make([][]geometry.Vector3, len(s.Grid.Points))
		for i, row := range s.Grid.Points {
			points, err := toVectors(row)
			if err != nil {
				return nil, fmt.Errorf("grid row %d: %w", i, err)
			}
			rows[i] = points
		}
		return mesh.BuildGrid(mesh.GridSpec{
			Points:     rows,
			RowClosed:  s.Grid.RowClosed,
			ColClosed:  s.Grid.ColClosed,
			SeamOffset: s.Grid.SeamOffset,
			Uncapped:   s.Grid.Uncapped,
		})

	case s.HeightMap != nil:
		heights := s.HeightMap.Heights
		if s.HeightMap.CSV != "" {
			path := s.HeightMap.CSV
			if !filepath.IsAbs(path) {
				path = filepath.Join(s.dir, path)
			}
			var err error
			heights, err = LoadHeightsCSV(path)
			if err != nil {
				return nil, err
			}
		}
		return mesh.BuildHeightField(mesh.HeightFieldSpec{
			Heights: heights,
			Base:    s.HeightMap.Base,
			StepX:   s.HeightMap.StepX,
			StepY:   s.HeightMap.StepY,
		})
	}

	return nil, fmt.Errorf("scene defines no shape")
}

// toVectors validates coordinate tuples and converts them to 3D
// points. Tuples of any other dimension fail with the geometry
// package's dimension error.
func toVectors(coords [][]float64) ([]geometry.Vector3, error) {
	points := make([]geometry.Vector3, len(coords))
	for i, c := range coords {
		v, err := geometry.NewVector(c...).AsVector3()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = v
	}
	return points, nil
}
