package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goscad/pkg/stl"
)

var (
	convertOutput string
	convertFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert [in.stl]",
	Short: "Convert an STL file between binary and ASCII",
	Args:  cobra.ExactArgs(1),
	Run:   runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (required)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "binary", "target format: binary or ascii")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	model, err := stl.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	format := stl.Format(convertFormat)
	if err := stl.Export(convertOutput, model, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d triangles, %s)\n", convertOutput, model.TriangleCount(), format)
}
