package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuelane/seating-backend/pkg/types"
)

const tolerance = 1e-9

func TestComputeFitLandscapeImageInPortraitSurface(t *testing.T) {
	fit := ComputeFit(1000, 500, 800, 600)

	assert.InDelta(t, 0.8, fit.Scale, tolerance)
	assert.InDelta(t, 800, fit.DrawWidth, tolerance)
	assert.InDelta(t, 400, fit.DrawHeight, tolerance)
	assert.InDelta(t, 0, fit.DrawX, tolerance)
	assert.InDelta(t, 100, fit.DrawY, tolerance)
}

func TestComputeFitPillarbox(t *testing.T) {
	// tall image in a wide surface letterboxes left/right
	fit := ComputeFit(500, 1000, 800, 600)

	assert.InDelta(t, 0.6, fit.Scale, tolerance)
	assert.InDelta(t, 300, fit.DrawWidth, tolerance)
	assert.InDelta(t, 600, fit.DrawHeight, tolerance)
	assert.InDelta(t, 250, fit.DrawX, tolerance)
	assert.InDelta(t, 0, fit.DrawY, tolerance)
}

func TestComputeFitDegenerateDimensions(t *testing.T) {
	assert.True(t, ComputeFit(0, 500, 800, 600).IsZero())
	assert.True(t, ComputeFit(1000, 500, 800, 0).IsZero())
	assert.True(t, ComputeFit(-10, 500, 800, 600).IsZero())
}

func TestRenderPixelCenterPoint(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600)

	px, py := v.RenderPixel(types.Coordinates{X: 50, Y: 50})
	assert.InDelta(t, 400, px, tolerance)
	assert.InDelta(t, 300, py, tolerance)
}

func TestScreenPixelIdentityTransform(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600)

	sx, sy := v.ScreenPixel(types.Coordinates{X: 50, Y: 50})
	assert.InDelta(t, 400, sx, tolerance)
	assert.InDelta(t, 300, sy, tolerance)
}

func TestScreenPixelZoomPan(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600).
		WithTransform(Transform{Zoom: 2, PanX: -100, PanY: 50})

	sx, sy := v.ScreenPixel(types.Coordinates{X: 50, Y: 50})
	assert.InDelta(t, -100+2*400, sx, tolerance)
	assert.InDelta(t, 50+2*300, sy, tolerance)
}

func TestPercentFromPointerRoundTrip(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600)

	got := v.PercentFromPointer(400, 300)
	require.False(t, IsOutOfBounds(got))
	assert.InDelta(t, 50, got.X, tolerance)
	assert.InDelta(t, 50, got.Y, tolerance)
}

func TestPercentFromPointerRoundTripUnderZoomPan(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600).
		WithTransform(Transform{Zoom: 1.5, PanX: 40, PanY: -25})

	for _, point := range []types.Coordinates{
		{X: 0, Y: 0},
		{X: 50, Y: 50},
		{X: 100, Y: 100},
		{X: 12.5, Y: 87.5},
	} {
		sx, sy := v.ScreenPixel(point)
		back := v.PercentFromPointer(sx, sy)
		require.False(t, IsOutOfBounds(back), "point %+v", point)
		assert.InDelta(t, point.X, back.X, 1e-6)
		assert.InDelta(t, point.Y, back.Y, 1e-6)
	}
}

func TestPercentFromPointerLetterboxIsOutOfBounds(t *testing.T) {
	// image is drawn from y=100 down; (0,0) sits in the top margin
	v := NewViewport(1000, 500, 800, 600)

	got := v.PercentFromPointer(0, 0)
	assert.True(t, IsOutOfBounds(got))

	// beyond the far edge is out of bounds too
	got = v.PercentFromPointer(400, 501)
	assert.True(t, IsOutOfBounds(got))
}

func TestPercentFromPointerZeroViewport(t *testing.T) {
	v := NewViewport(0, 0, 800, 600)
	assert.True(t, IsOutOfBounds(v.PercentFromPointer(100, 100)))
}

func TestViewportRecomputesFitOnChange(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600)
	resized := v.WithSurfaceSize(1600, 1200)

	assert.InDelta(t, 1.6, resized.Fit().Scale, tolerance)
	// original snapshot untouched
	assert.InDelta(t, 0.8, v.Fit().Scale, tolerance)

	swapped := v.WithImage(800, 600)
	assert.InDelta(t, 1.0, swapped.Fit().Scale, tolerance)
}

func TestTransformNormalization(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600).
		WithTransform(Transform{Zoom: 0})

	// zero zoom is treated as identity, not a divide-by-zero
	got := v.PercentFromPointer(400, 300)
	require.False(t, IsOutOfBounds(got))
	assert.InDelta(t, 50, got.X, tolerance)
}

func TestVisibleImageRect(t *testing.T) {
	v := NewViewport(1000, 500, 800, 600).
		WithTransform(Transform{Zoom: 2, PanX: 10, PanY: 20})

	x, y, w, h := v.VisibleImageRect()
	assert.InDelta(t, 10, x, tolerance)
	assert.InDelta(t, 20+2*100, y, tolerance)
	assert.InDelta(t, 1600, w, tolerance)
	assert.InDelta(t, 800, h, tolerance)
}

func TestFitContains(t *testing.T) {
	fit := ComputeFit(1000, 500, 800, 600)

	assert.True(t, fit.Contains(0, 100))
	assert.True(t, fit.Contains(800, 500))
	assert.False(t, fit.Contains(0, 99.9))
	assert.False(t, fit.Contains(400, 500.1))
	assert.False(t, Fit{}.Contains(10, 10))
}
