package preview

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goscad/pkg/stl"
)

// Widget is an interactive fyne preview of a model: drag to orbit,
// scroll to zoom
type Widget struct {
	widget.BaseWidget
	model  *stl.Model
	camera *Camera
	img    *canvas.Image
}

// NewWidget creates a preview widget for the model
func NewWidget(model *stl.Model) *Widget {
	w := &Widget{
		model:  model,
		camera: NewCamera(model.BoundingBox()),
		img:    canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	w.img.FillMode = canvas.ImageFillStretch
	w.ExtendBaseWidget(w)
	return w
}

// SetModel replaces the previewed model, keeping the current view
func (w *Widget) SetModel(model *stl.Model) {
	w.model = model
	w.redraw()
}

// Dragged orbits the camera
func (w *Widget) Dragged(e *fyne.DragEvent) {
	w.camera.Rotate(float64(e.Dragged.DY)*0.01, float64(e.Dragged.DX)*0.01)
	w.redraw()
}

// DragEnd implements fyne.Draggable
func (w *Widget) DragEnd() {}

// Scrolled zooms the camera
func (w *Widget) Scrolled(e *fyne.ScrollEvent) {
	w.camera.Zoom(float64(-e.Scrolled.DY) * 0.01)
	w.redraw()
}

func (w *Widget) redraw() {
	size := w.Size()
	width, height := int(size.Width), int(size.Height)
	if width < 1 || height < 1 {
		return
	}
	w.img.Image = Render(w.model, w.camera, width, height)
	w.img.Refresh()
}

// CreateRenderer implements fyne.Widget
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return &widgetRenderer{widget: w}
}

type widgetRenderer struct {
	widget *Widget
}

func (r *widgetRenderer) Layout(size fyne.Size) {
	r.widget.img.Resize(size)
	r.widget.redraw()
}

func (r *widgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *widgetRenderer) Refresh() {
	r.widget.redraw()
	canvas.Refresh(r.widget)
}

func (r *widgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.img}
}

func (r *widgetRenderer) Destroy() {}
