// Package canvas defines the 2D drawing surface the renderer targets and
// the surfaces that implement it: a cell rasterizer for terminals and a
// recorder for tests. The browser surface lives with the ebiten frontend.
//
// Coordinates are logical pixels with y growing downward. Angles are
// radians, positive turning clockwise on screen.
package canvas

import (
	"image/color"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

// ImageID names an image asset. Surfaces resolve ids to whatever they can
// actually draw (decoded bitmaps, glyph art).
type ImageID string

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Surface is everything the renderer needs from a drawing target.
// Surfaces must tolerate out-of-range coordinates by clipping.
type Surface interface {
	// Size returns the drawable area in logical pixels.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	FillRect(b core.Box, c color.RGBA)

	// FillVerticalGradient fills b, blending from top at b.Y to bottom at b.Bottom().
	FillVerticalGradient(b core.Box, top, bottom color.RGBA)

	// ImageReady reports whether the asset has finished loading.
	// Draw calls for assets that are not ready are no-ops.
	ImageReady(id ImageID) bool

	// DrawImage stretches the asset over b.
	DrawImage(id ImageID, b core.Box)

	// DrawSprite draws the asset into b rotated by angle about b's center.
	DrawSprite(id ImageID, b core.Box, angle float64)

	// StrokeBezier strokes a cubic Bezier curve from p0 to p3.
	StrokeBezier(p0, c1, c2, p3 Point, width float64, c color.RGBA)

	StrokePolyline(pts []Point, width float64, c color.RGBA)

	// FillText draws text with its baseline at y, left-aligned at x.
	FillText(text string, x, y, size float64, c color.RGBA)
}

// BezierAt evaluates the cubic Bezier curve at t in [0, 1].
func BezierAt(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}
