package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goscad/pkg/scene"
	"github.com/philipparndt/goscad/pkg/stl"
)

var (
	buildOutput string
	buildFormat string
	buildScad   string
)

var buildCmd = &cobra.Command{
	Use:   "build [scene.yaml]",
	Short: "Build a mesh from a scene file and export it",
	Long: `Build reads a YAML scene description, runs the matching mesh
builder and writes the result as an STL file, an OpenSCAD polyhedron
fragment, or both.`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output STL file (default: scene name + .stl)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "binary", "STL format: binary or ascii")
	buildCmd.Flags().StringVar(&buildScad, "scad", "", "also write an OpenSCAD fragment to this file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	if err := buildScene(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildScene(scenePath string) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}

	m, err := s.Build()
	if err != nil {
		return err
	}

	name := s.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
	}
	model := stl.FromMesh(m, name)

	if buildScad != "" {
		if err := os.WriteFile(buildScad, []byte(m.SCAD()+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write scad fragment: %w", err)
		}
		fmt.Printf("Wrote %s\n", buildScad)
	}

	output := buildOutput
	if output == "" {
		output = name + ".stl"
	}

	format := stl.Format(buildFormat)
	if format != stl.FormatBinary && format != stl.FormatASCII {
		return fmt.Errorf("unknown format %q (want binary or ascii)", buildFormat)
	}

	if err := stl.Export(output, model, format); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d vertices, %d faces, %d triangles)\n",
		output, m.VertexCount(), m.FaceCount(), model.TriangleCount())
	return nil
}
