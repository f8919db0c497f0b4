// Package web runs the game on ebiten, in a desktop window or a browser
// canvas under wasm.
package web

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

// gradientSteps is the height of the cached gradient strip.
const gradientSteps = 256

// Surface draws canvas operations onto an ebiten image.
type Surface struct {
	dst    *ebiten.Image
	w, h   float64
	assets *AssetLoader

	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16

	gradient   *ebiten.Image
	gradTop    color.RGBA
	gradBottom color.RGBA
}

// NewSurface creates a surface that reads images and fonts from assets.
func NewSurface(assets *AssetLoader) *Surface {
	return &Surface{assets: assets}
}

// Target points the surface at dst, which represents a w x h logical
// viewport.
func (s *Surface) Target(dst *ebiten.Image, w, h float64) {
	s.dst = dst
	s.w, s.h = w, h
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) Clear() {
	s.dst.Clear()
}

func (s *Surface) FillRect(b core.Box, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// gradientPixels returns an RGBA strip of n rows blending top to bottom.
func gradientPixels(top, bottom color.RGBA, n int) []byte {
	pix := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := core.Lerp(top, bottom, t)
		pix = append(pix, c.R, c.G, c.B, 0xff)
	}
	return pix
}

func (s *Surface) FillVerticalGradient(b core.Box, top, bottom color.RGBA) {
	if s.gradient == nil || s.gradTop != top || s.gradBottom != bottom {
		if s.gradient == nil {
			s.gradient = ebiten.NewImage(1, gradientSteps)
		}
		s.gradient.WritePixels(gradientPixels(top, bottom, gradientSteps))
		s.gradTop, s.gradBottom = top, bottom
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W, b.H/gradientSteps)
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.gradient, op)
}

func (s *Surface) ImageReady(id canvas.ImageID) bool {
	return s.assets != nil && s.assets.ImageReady(id)
}

// DrawImage stretches id over b.
func (s *Surface) DrawImage(id canvas.ImageID, b core.Box) {
	img, ok := s.assets.Image(id)
	if !ok {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W/float64(iw), b.H/float64(ih))
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// DrawSprite draws id scaled into b, rotated by angle about b's centre.
func (s *Surface) DrawSprite(id canvas.ImageID, b core.Box, angle float64) {
	img, ok := s.assets.Image(id)
	if !ok {
		return
	}
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(b.W/iw, b.H/ih)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(b.X+b.W/2, b.Y+b.H/2)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// whitePixel is the source texture for stroked paths.
func (s *Surface) whitePixel() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

func (s *Surface) stroke(path *vector.Path, width float64, c color.RGBA) {
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, s.whitePixel(), op)
}

func (s *Surface) StrokeBezier(p0, c1, c2, p3 canvas.Point, width float64, c color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(p0.X), float32(p0.Y))
	path.CubicTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p3.X), float32(p3.Y))
	s.stroke(&path, width, c)
}

func (s *Surface) StrokePolyline(pts []canvas.Point, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	s.stroke(&path, width, c)
}

// FillText draws text with its baseline at y.
func (s *Surface) FillText(str string, x, y, size float64, c color.RGBA) {
	face := s.assets.Face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, op)
}

var _ canvas.Surface = (*Surface)(nil)
