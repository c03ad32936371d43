package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goscad/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scene.yaml]",
	Short: "Rebuild the scene's exports whenever the file changes",
	Long: `Watch builds the scene once, then keeps watching the scene file
and rebuilds the STL (and OpenSCAD fragment, if requested) on every
save. Uses the same flags as build.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output STL file (default: scene name + .stl)")
	watchCmd.Flags().StringVar(&buildFormat, "format", "binary", "STL format: binary or ascii")
	watchCmd.Flags().StringVar(&buildScad, "scad", "", "also write an OpenSCAD fragment to this file")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	scenePath := args[0]

	rebuild := func() {
		if err := buildScene(scenePath); err != nil {
			fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
		}
	}
	rebuild()

	sw, err := watcher.New(scenePath, 200*time.Millisecond, rebuild)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sw.Close()

	errs := sw.Start()
	fmt.Printf("Watching %s (ctrl-c to stop)\n", scenePath)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case err := <-errs:
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-stop:
			fmt.Println("\nStopped")
			return
		}
	}
}
