package krane

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

func testSnapshot(score int) Snapshot {
	return Snapshot{
		State:         core.GameState{State: core.StatePlaying, Score: score},
		Player:        Player{X: 100, Y: 360, W: 40, H: 40, Vel: 3},
		Obstacles:     []Obstacle{{X: 400, TopHeight: 100, Gap: 350, SparkOffset: 0.5}},
		ViewW:         800,
		ViewH:         600,
		ObstacleWidth: 6,
	}
}

func newTestRenderer() *Renderer {
	return NewRenderer(config.DefaultKraneConfig(), rand.New(rand.NewSource(1)))
}

func TestDrawOrder(t *testing.T) {
	rec := canvas.NewRecorder(800, 600, SceneAsset("kampala"), FrameAsset(0))
	newTestRenderer().Draw(rec, testSnapshot(0))

	expected := []canvas.OpKind{
		canvas.OpClear,
		canvas.OpImage,
		canvas.OpBezier,
		canvas.OpPolyline, canvas.OpPolyline, canvas.OpPolyline, canvas.OpPolyline, canvas.OpPolyline,
		canvas.OpFillRect, canvas.OpFillRect,
		canvas.OpSprite,
		canvas.OpText,
	}
	got := rec.Kinds()
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("draw order = %v\nexpected %v", got, expected)
	}
}

func TestBackgroundFallback(t *testing.T) {
	rec := canvas.NewRecorder(800, 600, FrameAsset(0))
	newTestRenderer().Draw(rec, testSnapshot(0))

	if rec.Count(canvas.OpImage) != 0 {
		t.Error("unready background should not be drawn")
	}
	grads := rec.Filter(canvas.OpGradient)
	if len(grads) != 1 {
		t.Fatalf("gradient count = %d, expected 1", len(grads))
	}
	g := grads[0]
	if g.Color != core.ColorSkyTop || g.Color2 != core.ColorSkyBottom {
		t.Errorf("gradient = %v -> %v, expected sky colors", g.Color, g.Color2)
	}
	if g.Box != (core.Box{W: 800, H: 600}) {
		t.Errorf("gradient box = %+v, expected full viewport", g.Box)
	}
	if rec.Kinds()[1] != canvas.OpGradient {
		t.Errorf("gradient drawn at position %v, expected right after Clear", rec.Kinds())
	}
}

func TestSceneByScore(t *testing.T) {
	tests := []struct {
		score int
		scene string
	}{
		{0, "kampala"},
		{9, "kampala"},
		{10, "mbarara"},
		{29, "mbarara"},
		{30, "jinja"},
	}
	for _, tc := range tests {
		id := SceneAsset(tc.scene)
		rec := canvas.NewRecorder(800, 600, SceneAsset("kampala"), SceneAsset("mbarara"), SceneAsset("jinja"))
		newTestRenderer().Draw(rec, testSnapshot(tc.score))

		imgs := rec.Filter(canvas.OpImage)
		if len(imgs) != 1 || imgs[0].ID != id {
			t.Errorf("score %d drew %+v, expected %s", tc.score, imgs, id)
		}
	}
}

func TestSpriteSkippedUntilReady(t *testing.T) {
	rec := canvas.NewRecorder(800, 600)
	newTestRenderer().Draw(rec, testSnapshot(0))

	if rec.Count(canvas.OpSprite) != 0 {
		t.Error("unready sprite frame should be skipped")
	}
	kinds := rec.Kinds()
	if kinds[len(kinds)-1] != canvas.OpText {
		t.Error("HUD should still be drawn last")
	}
}

func TestSpriteFrameAndTilt(t *testing.T) {
	snap := testSnapshot(0)
	snap.Frame = 7
	rec := canvas.NewRecorder(800, 600, FrameAsset(7))
	newTestRenderer().Draw(rec, snap)

	sprites := rec.Filter(canvas.OpSprite)
	if len(sprites) != 1 {
		t.Fatalf("sprite count = %d, expected 1", len(sprites))
	}
	sp := sprites[0]
	if sp.ID != FrameAsset(7) {
		t.Errorf("sprite id = %s, expected frame 7", sp.ID)
	}
	if sp.Box != (core.Box{X: 100, Y: 200, W: 40, H: 40}) {
		t.Errorf("sprite box = %+v", sp.Box)
	}
	// Rising: nose up, counter-clockwise.
	expected := math.Atan2(-1.5, 15)
	if math.Abs(sp.Angle-expected) > 1e-12 || sp.Angle >= 0 {
		t.Errorf("sprite angle = %v, expected %v", sp.Angle, expected)
	}
}

func TestHUD(t *testing.T) {
	rec := canvas.NewRecorder(800, 600)
	newTestRenderer().Draw(rec, testSnapshot(12))

	texts := rec.Filter(canvas.OpText)
	if len(texts) != 1 {
		t.Fatalf("text count = %d, expected 1", len(texts))
	}
	hud := texts[0]
	if hud.Text != "Score: 12" || hud.Points[0] != canvas.Pt(20, 40) || hud.Size != 24 {
		t.Errorf("HUD = %q at %v size %v", hud.Text, hud.Points, hud.Size)
	}
}

func TestObstacleGeometry(t *testing.T) {
	rec := canvas.NewRecorder(800, 600)
	newTestRenderer().Draw(rec, testSnapshot(0))

	wire := rec.Filter(canvas.OpBezier)[0]
	expectedWire := []canvas.Point{canvas.Pt(400, 0), canvas.Pt(380, 30), canvas.Pt(420, 70), canvas.Pt(400, 100)}
	for i, p := range expectedWire {
		if math.Abs(wire.Points[i].X-p.X) > 1e-9 || math.Abs(wire.Points[i].Y-p.Y) > 1e-9 {
			t.Errorf("wire point %d = %v, expected %v", i, wire.Points[i], p)
		}
	}
	if wire.Width != 6 || wire.Color != core.ColorWire {
		t.Errorf("wire width/color = %v/%v", wire.Width, wire.Color)
	}

	rects := rec.Filter(canvas.OpFillRect)
	body := core.Box{X: 352, Y: 450, W: 120, H: 150}
	capBox := core.Box{X: 347, Y: 450, W: 130, H: 20}
	if rects[0].Box != body || rects[0].Color != core.ColorChimney {
		t.Errorf("chimney = %+v, expected %+v", rects[0].Box, body)
	}
	if rects[1].Box != capBox || rects[1].Color != core.ColorChimneyCap {
		t.Errorf("cap = %+v, expected %+v", rects[1].Box, capBox)
	}
}

func TestSparks(t *testing.T) {
	rec := canvas.NewRecorder(800, 600)
	newTestRenderer().Draw(rec, testSnapshot(0))

	sparks := rec.Filter(canvas.OpPolyline)
	if len(sparks) != 5 {
		t.Fatalf("spark count = %d, expected 5", len(sparks))
	}
	for i, sp := range sparks {
		if len(sp.Points) != 11 {
			t.Errorf("spark %d has %d points, expected 11", i, len(sp.Points))
		}
		if y := sp.Points[0].Y; y < 0 || y >= 100 {
			t.Errorf("spark %d starts at y=%v, expected within the wire", i, y)
		}
		if sp.Color != core.ColorSpark {
			t.Errorf("spark %d color = %v", i, sp.Color)
		}
	}
	// The spark phase wraps: offset 0.5 and 1.5 draw the same positions.
	snap := testSnapshot(0)
	snap.Obstacles[0].SparkOffset = 1.5
	rec2 := canvas.NewRecorder(800, 600)
	newTestRenderer().Draw(rec2, snap)
	for i, sp := range rec2.Filter(canvas.OpPolyline) {
		if math.Abs(sp.Points[0].Y-sparks[i].Points[0].Y) > 1e-9 {
			t.Errorf("spark %d y = %v, expected %v", i, sp.Points[0].Y, sparks[i].Points[0].Y)
		}
	}
}

func TestRenderDoesNotPerturbLayout(t *testing.T) {
	cfg := config.DefaultKraneConfig()
	rc := core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Seed: 9}

	drawn, plain := New(cfg), New(cfg)
	drawn.Reset(rc)
	plain.Reset(rc)
	drawn.Tap()
	plain.Tap()

	rec := canvas.NewRecorder(800, 600)
	for i := 0; i < 600; i++ {
		if i%20 == 0 {
			drawn.Tap()
			plain.Tap()
		}
		drawn.Step()
		plain.Step()
		drawn.Render(rec)
		rec.Reset()
	}

	a, b := drawn.Snapshot(), plain.Snapshot()
	if a.Spawned != b.Spawned || len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("layouts differ: %d vs %d spawned", a.Spawned, b.Spawned)
	}
	for i := range a.Obstacles {
		if a.Obstacles[i].TopHeight != b.Obstacles[i].TopHeight {
			t.Errorf("obstacle %d top %v vs %v", i, a.Obstacles[i].TopHeight, b.Obstacles[i].TopHeight)
		}
	}
}
