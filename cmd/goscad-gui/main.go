package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/philipparndt/goscad/pkg/preview"
	"github.com/philipparndt/goscad/pkg/scene"
	"github.com/philipparndt/goscad/pkg/stl"
	"github.com/philipparndt/goscad/pkg/watcher"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: goscad-gui <scene.yaml>")
		os.Exit(1)
	}
	scenePath := os.Args[1]

	model, err := buildModel(scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	window := a.NewWindow("goscad - " + scenePath)

	view := preview.NewWidget(model)
	window.SetContent(view)
	window.Resize(fyne.NewSize(800, 600))

	// Rebuild the preview when the scene file changes
	sw, err := watcher.New(scenePath, 200*time.Millisecond, func() {
		model, err := buildModel(scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rebuild failed: %v\n", err)
			return
		}
		fyne.Do(func() {
			view.SetModel(model)
		})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sw.Close()
	sw.Start()

	window.ShowAndRun()
}

func buildModel(scenePath string) (*stl.Model, error) {
	s, err := scene.Load(scenePath)
	if err != nil {
		return nil, err
	}
	m, err := s.Build()
	if err != nil {
		return nil, err
	}
	return stl.FromMesh(m, s.Name), nil
}
