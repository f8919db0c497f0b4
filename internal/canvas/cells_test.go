package canvas

import (
	"testing"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

func newTestCells() *Cells {
	return NewCells(core.NewScreen(10, 4), 10, 25)
}

func TestCellsSize(t *testing.T) {
	c := newTestCells()
	w, h := c.Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = %vx%v, expected 100x100", w, h)
	}
}

func TestCellsSetScale(t *testing.T) {
	c := newTestCells()
	c.SetScale(80, 150)
	w, h := c.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() after SetScale = %vx%v, expected 800x600", w, h)
	}

	c.SetScale(0, 10)
	if w2, _ := c.Size(); w2 != 800 {
		t.Errorf("SetScale(0, 10) should be ignored, width = %v", w2)
	}
}

func TestCellsFillRect(t *testing.T) {
	c := newTestCells()
	c.FillRect(core.Box{X: 0, Y: 0, W: 20, H: 25}, core.ColorChimney)

	s := c.Screen()
	if s.GetCell(0, 0).Bg != core.ColorChimney || s.GetCell(1, 0).Bg != core.ColorChimney {
		t.Error("FillRect should paint cells (0,0) and (1,0)")
	}
	if s.GetCell(2, 0).Bg != core.NoColor {
		t.Error("FillRect painted outside its box")
	}

	// Thinner than a cell still covers one cell
	c.FillRect(core.Box{X: 31, Y: 50, W: 4, H: 4}, core.ColorChimneyCap)
	if s.GetCell(3, 2).Bg != core.ColorChimneyCap {
		t.Error("thin FillRect should cover at least one cell")
	}
}

func TestCellsGradient(t *testing.T) {
	c := newTestCells()
	c.FillVerticalGradient(core.Box{W: 100, H: 100}, core.ColorSkyTop, core.ColorSkyBottom)

	s := c.Screen()
	top := s.GetCell(0, 0).Bg
	bottom := s.GetCell(0, 3).Bg
	if top.R >= bottom.R {
		t.Errorf("gradient top %v should be bluer than bottom %v", top, bottom)
	}
	if s.GetCell(9, 0).Bg != top {
		t.Error("gradient rows should be uniform")
	}
}

func TestCellsImageReady(t *testing.T) {
	c := newTestCells()
	if c.ImageReady("scene") {
		t.Error("ImageReady() = true for unregistered art")
	}
	c.Register("scene", Art{Lines: []string{"^"}})
	if !c.ImageReady("scene") {
		t.Error("ImageReady() = false after Register")
	}

	// Unready draws are no-ops
	c.DrawImage("missing", core.Box{W: 100, H: 100})
	c.DrawSprite("missing", core.Box{W: 100, H: 100}, 0)
	if c.Screen().String() != core.NewScreen(10, 4).String() {
		t.Error("drawing an unregistered id should not change the screen")
	}
}

func TestCellsBackdrop(t *testing.T) {
	c := newTestCells()
	c.Register("scene", Art{
		Lines:    []string{"^"},
		Fg:       core.ColorWire,
		Backdrop: true,
		Top:      core.ColorSkyTop,
		Bottom:   core.ColorSkyBottom,
	})
	c.DrawImage("scene", core.Box{W: 100, H: 100})

	s := c.Screen()
	for x := 0; x < 10; x++ {
		cell := s.GetCell(x, 3)
		if cell.Rune != '^' || cell.Fg != core.ColorWire {
			t.Fatalf("bottom row cell %d = %+v, expected tiled '^'", x, cell)
		}
		if cell.Bg == core.NoColor {
			t.Fatalf("backdrop glyph at %d lost its sky background", x)
		}
	}
	if s.Get(0, 0) != ' ' {
		t.Errorf("sky row should be empty, got %q", s.Get(0, 0))
	}
}

func TestCellsSprite(t *testing.T) {
	c := newTestCells()
	c.Register("crane", Art{Lines: []string{"ab"}, Up: []string{"UP"}, Fg: core.ColorHUD})
	box := core.Box{X: 40, Y: 25, W: 20, H: 25}

	c.DrawSprite("crane", box, 0)
	if c.Screen().Get(4, 1) != 'a' || c.Screen().Get(5, 1) != 'b' {
		t.Errorf("level sprite row = %q", c.Screen().Row(1))
	}

	c.Clear()
	c.DrawSprite("crane", box, -0.5)
	if c.Screen().Get(4, 1) != 'U' {
		t.Errorf("nose-up sprite row = %q", c.Screen().Row(1))
	}

	// No Down variant: falls back to Lines
	c.Clear()
	c.DrawSprite("crane", box, 0.5)
	if c.Screen().Get(4, 1) != 'a' {
		t.Errorf("nose-down sprite row = %q", c.Screen().Row(1))
	}
}

func TestCellsStrokeBezier(t *testing.T) {
	c := newTestCells()
	c.StrokeBezier(Pt(55, 0), Pt(55, 30), Pt(55, 70), Pt(55, 100), 6, core.ColorWire)

	for y := 0; y < 4; y++ {
		cell := c.Screen().GetCell(5, y)
		if cell.Rune != '│' || cell.Fg != core.ColorWire {
			t.Errorf("row %d cell = %+v, expected vertical wire", y, cell)
		}
	}
}

func TestCellsFillText(t *testing.T) {
	c := newTestCells()
	c.FillText("Hi", 20, 40, 24, core.ColorHUD)

	if c.Screen().Get(2, 0) != 'H' || c.Screen().Get(3, 0) != 'i' {
		t.Errorf("row 0 = %q, expected text at column 2", c.Screen().Row(0))
	}
}

func TestSlopeGlyph(t *testing.T) {
	tests := []struct {
		dx, dy   float64
		expected rune
	}{
		{0, 1, '│'},
		{1, 0, '─'},
		{1, 1, '╲'},
		{-1, 1, '╱'},
	}
	for _, tc := range tests {
		if got := slopeGlyph(tc.dx, tc.dy); got != tc.expected {
			t.Errorf("slopeGlyph(%v, %v) = %q, expected %q", tc.dx, tc.dy, got, tc.expected)
		}
	}
}

func TestBezierAtEndpoints(t *testing.T) {
	p0, c1, c2, p3 := Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)
	if got := BezierAt(p0, c1, c2, p3, 0); got != p0 {
		t.Errorf("BezierAt(0) = %v, expected %v", got, p0)
	}
	if got := BezierAt(p0, c1, c2, p3, 1); got != p3 {
		t.Errorf("BezierAt(1) = %v, expected %v", got, p3)
	}
}
