package geometry

import "math"

// Fit is the aspect-ratio-preserving placement of the venue image inside a
// render surface, equivalent to CSS object-fit: contain. The image is
// centered; the off-axis gap is letterboxed.
type Fit struct {
	Scale      float64 `json:"scale"`
	DrawWidth  float64 `json:"draw_width"`
	DrawHeight float64 `json:"draw_height"`
	DrawX      float64 `json:"draw_x"`
	DrawY      float64 `json:"draw_y"`
}

// ComputeFit places an imageW×imageH image on a surfaceW×surfaceH surface.
// Non-positive dimensions yield the zero Fit.
func ComputeFit(imageW, imageH, surfaceW, surfaceH float64) Fit {
	if imageW <= 0 || imageH <= 0 || surfaceW <= 0 || surfaceH <= 0 {
		return Fit{}
	}

	scale := math.Min(surfaceW/imageW, surfaceH/imageH)
	drawWidth := imageW * scale
	drawHeight := imageH * scale
	return Fit{
		Scale:      scale,
		DrawWidth:  drawWidth,
		DrawHeight: drawHeight,
		DrawX:      (surfaceW - drawWidth) / 2,
		DrawY:      (surfaceH - drawHeight) / 2,
	}
}

// IsZero reports whether the fit carries no drawable area.
func (f Fit) IsZero() bool {
	return f.DrawWidth <= 0 || f.DrawHeight <= 0
}

// Contains reports whether a surface pixel lands on the drawn image rather
// than in the letterbox margin.
func (f Fit) Contains(px, py float64) bool {
	if f.IsZero() {
		return false
	}
	relX := px - f.DrawX
	relY := py - f.DrawY
	return relX >= 0 && relX <= f.DrawWidth && relY >= 0 && relY <= f.DrawHeight
}
