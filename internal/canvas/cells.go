package canvas

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Art is the terminal rendition of an image asset.
type Art struct {
	// Lines are glyph rows; spaces are transparent.
	Lines []string

	// Up and Down replace Lines when a sprite is tilted nose-up or
	// nose-down past TiltThreshold. Either may be empty.
	Up, Down []string

	Fg color.RGBA

	// Backdrop art fills its box with a Top→Bottom gradient and tiles
	// Lines along the bottom edge. Other art is centered in its box.
	Backdrop    bool
	Top, Bottom color.RGBA
}

// TiltThreshold is the angle in radians past which tilted sprite
// variants are used.
const TiltThreshold = 0.15

func (a Art) variant(angle float64) []string {
	switch {
	case angle < -TiltThreshold && len(a.Up) > 0:
		return a.Up
	case angle > TiltThreshold && len(a.Down) > 0:
		return a.Down
	default:
		return a.Lines
	}
}

// Cells rasterizes Surface calls onto a core.Screen. One cell covers
// cellW x cellH logical pixels.
type Cells struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
	art    map[ImageID]Art
}

// NewCells creates a rasterizer over screen.
func NewCells(screen *core.Screen, cellW, cellH float64) *Cells {
	return &Cells{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		art:    make(map[ImageID]Art),
	}
}

// Register makes art available for id. Unregistered ids are never ready.
func (c *Cells) Register(id ImageID, art Art) {
	c.art[id] = art
}

// RegisterAll registers every entry of set.
func (c *Cells) RegisterAll(set map[ImageID]Art) {
	for id, art := range set {
		c.Register(id, art)
	}
}

// SetScale changes the logical size of one cell, for hosts whose
// viewport does not follow the terminal.
func (c *Cells) SetScale(cellW, cellH float64) {
	if cellW > 0 && cellH > 0 {
		c.cellW, c.cellH = cellW, cellH
	}
}

// Screen returns the underlying buffer.
func (c *Cells) Screen() *core.Screen {
	return c.screen
}

func (c *Cells) Size() (float64, float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

func (c *Cells) Clear() {
	c.screen.Clear()
}

// span converts a logical interval to a half-open cell range covering at
// least one cell.
func span(from, to, size float64) (int, int) {
	a := int(math.Round(from / size))
	b := int(math.Round(to / size))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (c *Cells) cell(p Point) (int, int) {
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

func (c *Cells) FillRect(b core.Box, col color.RGBA) {
	x0, x1 := span(b.X, b.Right(), c.cellW)
	y0, y1 := span(b.Y, b.Bottom(), c.cellH)
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), col)
}

func (c *Cells) FillVerticalGradient(b core.Box, top, bottom color.RGBA) {
	x0, x1 := span(b.X, b.Right(), c.cellW)
	y0, y1 := span(b.Y, b.Bottom(), c.cellH)
	for y := y0; y < y1; y++ {
		t := 0.0
		if b.H > 0 {
			t = ((float64(y)+0.5)*c.cellH - b.Y) / b.H
		}
		col := core.Lerp(top, bottom, t)
		for x := x0; x < x1; x++ {
			c.screen.SetBg(x, y, col)
		}
	}
}

func (c *Cells) ImageReady(id ImageID) bool {
	_, ok := c.art[id]
	return ok
}

func (c *Cells) DrawImage(id ImageID, b core.Box) {
	art, ok := c.art[id]
	if !ok {
		return
	}
	if !art.Backdrop {
		c.drawCentered(art.Lines, art.Fg, b)
		return
	}

	c.FillVerticalGradient(b, art.Top, art.Bottom)
	x0, x1 := span(b.X, b.Right(), c.cellW)
	_, y1 := span(b.Y, b.Bottom(), c.cellH)
	top := y1 - len(art.Lines)
	for i, line := range art.Lines {
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		for x := x0; x < x1; x++ {
			r := runes[(x-x0)%len(runes)]
			if r != ' ' {
				c.screen.SetFg(x, top+i, r, art.Fg)
			}
		}
	}
}

func (c *Cells) DrawSprite(id ImageID, b core.Box, angle float64) {
	art, ok := c.art[id]
	if !ok {
		return
	}
	c.drawCentered(art.variant(angle), art.Fg, b)
}

func (c *Cells) drawCentered(lines []string, fg color.RGBA, b core.Box) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	cx, cy := c.cell(Pt(b.X+b.W/2, b.Y+b.H/2))
	x0 := cx - w/2
	y0 := cy - len(lines)/2
	for i, line := range lines {
		j := 0
		for _, r := range line {
			if r != ' ' {
				c.screen.SetFg(x0+j, y0+i, r, fg)
			}
			j++
		}
	}
}

// slopeGlyph picks a line-drawing rune for a direction measured in cells.
func slopeGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case adx < ady*0.5:
		return '│'
	case ady < adx*0.5:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *Cells) StrokeBezier(p0, c1, c2, p3 Point, width float64, col color.RGBA) {
	// Sample densely enough that consecutive points never skip a cell.
	chord := math.Hypot((p3.X-p0.X)/c.cellW, (p3.Y-p0.Y)/c.cellH)
	ctrl := math.Hypot((c1.X-p0.X)/c.cellW, (c1.Y-p0.Y)/c.cellH) +
		math.Hypot((c2.X-c1.X)/c.cellW, (c2.Y-c1.Y)/c.cellH) +
		math.Hypot((p3.X-c2.X)/c.cellW, (p3.Y-c2.Y)/c.cellH)
	n := int(math.Ceil((chord+ctrl)*2)) + 1

	prev := p0
	for i := 1; i <= n; i++ {
		p := BezierAt(p0, c1, c2, p3, float64(i)/float64(n))
		g := slopeGlyph((p.X-prev.X)/c.cellW, (p.Y-prev.Y)/c.cellH)
		x, y := c.cell(p)
		if i == 1 {
			px, py := c.cell(prev)
			c.screen.SetFg(px, py, g, col)
		}
		c.screen.SetFg(x, y, g, col)
		prev = p
	}
}

func (c *Cells) StrokePolyline(pts []Point, width float64, col color.RGBA) {
	for _, p := range pts {
		x, y := c.cell(p)
		c.screen.SetFg(x, y, '~', col)
	}
}

func (c *Cells) FillText(text string, x, y, size float64, col color.RGBA) {
	cx := int(math.Floor(x / c.cellW))
	cy := int(math.Floor((y - size) / c.cellH))
	c.screen.DrawTextFg(cx, max(cy, 0), text, col)
}
