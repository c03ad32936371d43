package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goscad/version"
)

var rootCmd = &cobra.Command{
	Use:   "goscad",
	Short: "Parametric mesh generator with STL and OpenSCAD output",
	Long: `goscad builds triangulated surface meshes from parametric scene
descriptions - swept tubes, point grids and height fields - and exports
them as STL files (binary or ASCII) or OpenSCAD polyhedron fragments.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
