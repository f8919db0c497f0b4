package canvas

import (
	"image/color"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpGradient
	OpImage
	OpSprite
	OpBezier
	OpPolyline
	OpText
)

// String returns the Surface method name for the kind.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpGradient:
		return "FillVerticalGradient"
	case OpImage:
		return "DrawImage"
	case OpSprite:
		return "DrawSprite"
	case OpBezier:
		return "StrokeBezier"
	case OpPolyline:
		return "StrokePolyline"
	case OpText:
		return "FillText"
	default:
		return "Unknown"
	}
}

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	ID     ImageID
	Box    core.Box
	Color  color.RGBA
	Color2 color.RGBA // gradient bottom
	Points []Point
	Width  float64
	Angle  float64
	Text   string
	Size   float64
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	W, H  float64
	Ready map[ImageID]bool
	Ops   []Op
}

// NewRecorder creates a recorder of the given size with the listed
// assets reported as ready.
func NewRecorder(w, h float64, ready ...ImageID) *Recorder {
	r := &Recorder{W: w, H: h, Ready: make(map[ImageID]bool)}
	for _, id := range ready {
		r.Ready[id] = true
	}
	return r
}

// Reset drops recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Kinds returns the kinds of all recorded ops in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns recorded ops of kind k.
func (r *Recorder) Filter(k OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(b core.Box, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Box: b, Color: c})
}

func (r *Recorder) FillVerticalGradient(b core.Box, top, bottom color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Box: b, Color: top, Color2: bottom})
}

func (r *Recorder) ImageReady(id ImageID) bool {
	return r.Ready[id]
}

func (r *Recorder) DrawImage(id ImageID, b core.Box) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, ID: id, Box: b})
}

func (r *Recorder) DrawSprite(id ImageID, b core.Box, angle float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, ID: id, Box: b, Angle: angle})
}

func (r *Recorder) StrokeBezier(p0, c1, c2, p3 Point, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpBezier, Points: []Point{p0, c1, c2, p3}, Width: width, Color: c})
}

func (r *Recorder) StrokePolyline(pts []Point, width float64, c color.RGBA) {
	cp := append([]Point(nil), pts...)
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: cp, Width: width, Color: c})
}

func (r *Recorder) FillText(text string, x, y, size float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, Points: []Point{{X: x, Y: y}}, Size: size, Color: c})
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Cells)(nil)
)
