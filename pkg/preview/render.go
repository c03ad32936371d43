package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/goscad/pkg/geometry"
	"github.com/philipparndt/goscad/pkg/stl"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	surfaceColor    = geometry.NewVector3(0.55, 0.65, 0.85)
)

// Render rasterizes the model from the given camera into an RGBA
// image, flat-shading each triangle by its normal
func Render(model *stl.Model, camera *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, backgroundColor)
		}
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	light := camera.Target.Sub(camera.Position).Normalize().Mul(-1)

	fw, fh := float64(width), float64(height)
	for _, triangle := range model.Triangles {
		if triangle.Degenerate() {
			continue // zero area, nothing to draw
		}
		normal := triangle.Normal
		if normal.IsZero() {
			// Parsed files may carry blank normals; recompute
			normal = triangle.CalculateNormal()
		}

		// Two-sided flat shading
		shade := math.Abs(normal.Dot(light))
		col := color.RGBA{
			R: uint8(math.Min(255, (0.2+0.8*shade)*surfaceColor.X*255)),
			G: uint8(math.Min(255, (0.2+0.8*shade)*surfaceColor.Y*255)),
			B: uint8(math.Min(255, (0.2+0.8*shade)*surfaceColor.Z*255)),
			A: 255,
		}

		x1, y1, z1 := camera.Project(triangle.V1, fw, fh)
		x2, y2, z2 := camera.Project(triangle.V2, fw, fh)
		x3, y3, z3 := camera.Project(triangle.V3, fw, fh)
		fillTriangle(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	return img
}

// Snapshot renders the model from the default three-quarter view
func Snapshot(model *stl.Model, width, height int) *image.RGBA {
	camera := NewCamera(model.BoundingBox())
	return Render(model, camera, width, height)
}
