package krane

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Decoration constants.
const (
	wireBend      = 20  // horizontal pull of the wire's control points
	sparkCount    = 5   // sparks per wire
	sparkSegments = 10  // polyline steps per spark
	sparkStepX    = 2   // horizontal length of one step
	sparkJitter   = 10  // vertical jitter range of one step
	sparkWidth    = 2   // spark stroke width
	chimneyOffset = 0.4 // chimney left edge, as a share of its width, left of the wire
	capOverhang   = 5
	capHeight     = 20
)

// Renderer draws snapshots in a fixed order: background, obstacles,
// sprite, HUD.
type Renderer struct {
	cfg    config.KraneConfig
	sparks *rand.Rand
}

// NewRenderer creates a renderer whose spark jitter is drawn from rng.
func NewRenderer(cfg config.KraneConfig, rng *rand.Rand) *Renderer {
	return &Renderer{cfg: cfg, sparks: rng}
}

// Draw renders one frame of snap onto s.
func (r *Renderer) Draw(s canvas.Surface, snap Snapshot) {
	s.Clear()
	r.drawBackground(s, snap)
	for _, o := range snap.Obstacles {
		r.drawObstacle(s, o, snap.ViewH, snap.ObstacleWidth)
	}
	r.drawSprite(s, snap)
	r.drawHUD(s, snap.State.Score)
}

func (r *Renderer) drawBackground(s canvas.Surface, snap Snapshot) {
	full := core.Box{W: snap.ViewW, H: snap.ViewH}
	id := SceneAsset(r.cfg.SceneFor(snap.State.Score))
	if s.ImageReady(id) {
		s.DrawImage(id, full)
		return
	}
	s.FillVerticalGradient(full, core.ColorSkyTop, core.ColorSkyBottom)
}

func (r *Renderer) drawObstacle(s canvas.Surface, o Obstacle, viewH, width float64) {
	top := o.TopHeight

	// Wire
	s.StrokeBezier(
		canvas.Pt(o.X, 0),
		canvas.Pt(o.X-wireBend, top*0.3),
		canvas.Pt(o.X+wireBend, top*0.7),
		canvas.Pt(o.X, top),
		width, core.ColorWire,
	)

	// Sparks travel down the wire with the obstacle's phase.
	if top > 0 {
		for i := 0; i < sparkCount; i++ {
			t := float64(i) / float64(sparkCount-1)
			curveX := o.X + math.Sin(t*math.Pi)*wireBend
			phase := math.Mod(o.SparkOffset+float64(i)*0.2, 1) * top
			y := math.Mod(top*t+phase, top)
			s.StrokePolyline(r.spark(curveX-sparkSegments*sparkStepX/2, y), sparkWidth, core.ColorSpark)
		}
	}

	// Chimney from the gap's bottom edge to the floor, with a cap.
	cw := r.cfg.Render.ChimneyWidth
	cx := o.X - cw*chimneyOffset
	cy := o.GapBottom()
	s.FillRect(core.Box{X: cx, Y: cy, W: cw, H: viewH - cy}, core.ColorChimney)
	s.FillRect(core.Box{X: cx - capOverhang, Y: cy, W: cw + 2*capOverhang, H: capHeight}, core.ColorChimneyCap)
}

func (r *Renderer) spark(x, y float64) []canvas.Point {
	pts := make([]canvas.Point, 0, sparkSegments+1)
	pts = append(pts, canvas.Pt(x, y))
	for j := 1; j <= sparkSegments; j++ {
		pts = append(pts, canvas.Pt(x+float64(j*sparkStepX), y+(r.sparks.Float64()-0.5)*sparkJitter))
	}
	return pts
}

// Tilt returns the sprite rotation for a vertical velocity in the
// altitude frame: nose up while rising, clockwise positive on screen.
func Tilt(vel float64, rc config.RenderConfig) float64 {
	return math.Atan2(-vel*rc.TiltScale, rc.TiltReference)
}

func (r *Renderer) drawSprite(s canvas.Surface, snap Snapshot) {
	id := FrameAsset(snap.Frame)
	if !s.ImageReady(id) {
		return
	}
	s.DrawSprite(id, snap.Player.ScreenBox(snap.ViewH), Tilt(snap.Player.Vel, r.cfg.Render))
}

func (r *Renderer) drawHUD(s canvas.Surface, score int) {
	rc := r.cfg.Render
	s.FillText(fmt.Sprintf("Score: %d", score), rc.HUDX, rc.HUDY, rc.HUDSize, core.ColorHUD)
}
