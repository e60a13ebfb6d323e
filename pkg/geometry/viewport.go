package geometry

import "github.com/venuelane/seating-backend/pkg/types"

// Transform is the interactive zoom/pan state, captured as an immutable
// snapshot. Screen = pan + zoom * surface pixel.
type Transform struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`
}

// Identity is the resting transform: no zoom, no pan.
var Identity = Transform{Zoom: 1}

func (t Transform) normalized() Transform {
	if t.Zoom <= 0 {
		t.Zoom = 1
	}
	return t
}

// OutOfBounds is the sentinel returned when a pointer maps into the
// letterbox margin instead of the drawn image. Interactive callers check
// for it and skip the event.
var OutOfBounds = types.Coordinates{X: -1, Y: -1}

// IsOutOfBounds reports whether a converted coordinate is the sentinel.
func IsOutOfBounds(c types.Coordinates) bool {
	return c.X < 0 || c.Y < 0
}

// Viewport snapshots everything needed to map between percentage seat
// coordinates and pixels: image size, surface size, and the current
// transform. The fit is computed once per snapshot; the With methods
// return a new Viewport with the fit recomputed.
type Viewport struct {
	imageWidth    float64
	imageHeight   float64
	surfaceWidth  float64
	surfaceHeight float64
	transform     Transform
	fit           Fit
}

// NewViewport builds a snapshot for the given image and surface sizes with
// the identity transform.
func NewViewport(imageW, imageH, surfaceW, surfaceH float64) Viewport {
	return Viewport{
		imageWidth:    imageW,
		imageHeight:   imageH,
		surfaceWidth:  surfaceW,
		surfaceHeight: surfaceH,
		transform:     Identity,
		fit:           ComputeFit(imageW, imageH, surfaceW, surfaceH),
	}
}

// Fit returns the cached aspect-contain placement.
func (v Viewport) Fit() Fit {
	return v.fit
}

// Transform returns the snapshot's zoom/pan state.
func (v Viewport) Transform() Transform {
	return v.transform
}

// WithSurfaceSize returns a new snapshot for a resized surface.
func (v Viewport) WithSurfaceSize(surfaceW, surfaceH float64) Viewport {
	v.surfaceWidth = surfaceW
	v.surfaceHeight = surfaceH
	v.fit = ComputeFit(v.imageWidth, v.imageHeight, surfaceW, surfaceH)
	return v
}

// WithImage returns a new snapshot for a different background image.
func (v Viewport) WithImage(imageW, imageH float64) Viewport {
	v.imageWidth = imageW
	v.imageHeight = imageH
	v.fit = ComputeFit(imageW, imageH, v.surfaceWidth, v.surfaceHeight)
	return v
}

// WithTransform returns a new snapshot under a different zoom/pan.
func (v Viewport) WithTransform(t Transform) Viewport {
	v.transform = t.normalized()
	return v
}

// RenderPixel maps a percentage coordinate onto the surface, before the
// zoom/pan transform is applied.
func (v Viewport) RenderPixel(c types.Coordinates) (float64, float64) {
	px := v.fit.DrawX + (c.X/100)*v.fit.DrawWidth
	py := v.fit.DrawY + (c.Y/100)*v.fit.DrawHeight
	return px, py
}

// ScreenPixel maps a percentage coordinate all the way to the screen,
// including zoom and pan.
func (v Viewport) ScreenPixel(c types.Coordinates) (float64, float64) {
	px, py := v.RenderPixel(c)
	t := v.transform.normalized()
	return t.PanX + t.Zoom*px, t.PanY + t.Zoom*py
}

// PercentFromPointer inverts ScreenPixel for a pointer event. Pointers that
// land in the letterbox margin return the OutOfBounds sentinel; placement
// and removal logic must not act on it.
func (v Viewport) PercentFromPointer(screenX, screenY float64) types.Coordinates {
	if v.fit.IsZero() {
		return OutOfBounds
	}

	t := v.transform.normalized()
	px := (screenX - t.PanX) / t.Zoom
	py := (screenY - t.PanY) / t.Zoom

	if !v.fit.Contains(px, py) {
		return OutOfBounds
	}

	return types.Coordinates{
		X: (px - v.fit.DrawX) / v.fit.DrawWidth * 100,
		Y: (py - v.fit.DrawY) / v.fit.DrawHeight * 100,
	}
}

// VisibleImageRect returns the drawn image's rectangle in screen
// coordinates under the current transform, for pan clamping in the
// rendering layer.
func (v Viewport) VisibleImageRect() (x, y, width, height float64) {
	t := v.transform.normalized()
	return t.PanX + t.Zoom*v.fit.DrawX,
		t.PanY + t.Zoom*v.fit.DrawY,
		t.Zoom * v.fit.DrawWidth,
		t.Zoom * v.fit.DrawHeight
}
