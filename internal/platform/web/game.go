package web

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/kampala-krane/internal/audio"
	"github.com/vovakirdan/kampala-krane/internal/core"
	"github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/loop"
	"github.com/vovakirdan/kampala-krane/internal/registry"
)

// audioSampleRate is the rate effects are rendered at for ebiten.
const audioSampleRate = 44100

// Options configures the ebiten frontend.
type Options struct {
	Seed    int64         // 0 means time-based
	Assets  []krane.Asset // images to fetch in the background
	Fetcher Fetcher
	Font    []byte // display font, parsed in the background; nil keeps the fallback
	Sound   bool
	Logger  *log.Logger // nil discards
}

// Game hosts a registry game as an ebiten.Game.
type Game struct {
	game    registry.Game
	opts    Options
	logger  *log.Logger
	assets  *AssetLoader
	surface *Surface
	driver  loop.Driver

	frame       *ebiten.Image // last rendered game frame
	dirty       bool
	outW, outH  int
	unavailable error

	state    core.GameState
	runs     int
	runTicks int

	audioCtx *ebitenaudio.Context
	players  map[audio.Effect]*ebitenaudio.Player

	mu     sync.Mutex
	taps   int
	shared core.GameState
}

// NewGame creates the ebiten host, resets game to ready and starts
// loading assets.
func NewGame(game registry.Game, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:   game,
		opts:   opts,
		logger: logger,
		dirty:  true,
	}
	g.assets = NewAssetLoader(opts.Fetcher, logger)
	g.surface = NewSurface(g.assets)

	vw, vh := game.Viewport()
	game.Reset(core.RuntimeConfig{
		ScreenW:  int(vw),
		ScreenH:  int(vh),
		TickRate: ebiten.DefaultTPS,
		Seed:     opts.Seed,
	})
	g.setState(game.State())

	if opts.Fetcher != nil && len(opts.Assets) > 0 {
		g.assets.Load(context.Background(), opts.Assets)
	}
	if opts.Font != nil {
		g.assets.LoadFont(opts.Font)
	}
	if opts.Sound {
		g.initAudio()
	}
	return g
}

func (g *Game) initAudio() {
	g.audioCtx = ebitenaudio.NewContext(audioSampleRate)
	g.players = make(map[audio.Effect]*ebitenaudio.Player)
	for _, e := range []audio.Effect{audio.EffectFlap, audio.EffectScore, audio.EffectCrash} {
		g.players[e] = g.audioCtx.NewPlayerFromBytes(audio.RenderPCM(e, audioSampleRate))
	}
}

// Tap queues a tap. Safe to call from any goroutine; it is applied on
// the next update.
func (g *Game) Tap() {
	g.mu.Lock()
	g.taps++
	g.mu.Unlock()
}

// State returns the run state and score. Safe to call from any goroutine.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.shared
}

func (g *Game) setState(s core.GameState) {
	g.state = s
	g.mu.Lock()
	g.shared = s
	g.mu.Unlock()
}

func (g *Game) drainTaps() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.taps
	g.taps = 0
	return n
}

// inputTaps counts pointer, touch and key presses this update.
func inputTaps() int {
	n := len(inpututil.AppendJustPressedTouchIDs(nil))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		n++
	}
	return n
}

// Update applies queued taps and advances one frame while playing.
func (g *Game) Update() error {
	taps := g.drainTaps() + inputTaps()
	if g.unavailable == nil {
		for i := 0; i < taps; i++ {
			g.tap()
		}
	}

	if id, ok := g.driver.Next(); ok && g.driver.Claim(id) {
		g.step()
	}
	return nil
}

func (g *Game) tap() {
	ev := g.game.Tap()
	g.play(ev)
	g.setState(g.game.State())

	switch ev {
	case core.EventStart, core.EventRestart:
		g.driver.Start()
		g.runs++
		g.runTicks = 0
		w, h := g.game.Viewport()
		g.logger.Info("run started", "run", g.runs, "seed", g.opts.Seed, "viewport", fmt.Sprintf("%.0fx%.0f", w, h))
	}
}

func (g *Game) step() {
	res := g.game.Step()
	g.runTicks++
	for _, ev := range res.Events {
		g.play(ev)
	}
	g.setState(res.State)
	g.dirty = true

	if res.State.State != core.StatePlaying {
		g.driver.Stop()
		g.logger.Info("run ended", "run", g.runs, "score", res.State.Score, "ticks", g.runTicks)
	}
}

func (g *Game) play(ev core.Event) {
	p, ok := g.players[audio.EffectFor(ev)]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		g.logger.Warn("sound rewind failed", "error", err)
		return
	}
	p.Play()
}

// Draw paints the frozen game frame and, outside play, the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.unavailable != nil {
		screen.Fill(color.Black)
		g.drawText(screen, "Surface unavailable", 16, float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2, core.ColorHUD)
		return
	}

	vw, vh := g.game.Viewport()
	if g.frame == nil || g.frame.Bounds().Dx() != int(vw) || g.frame.Bounds().Dy() != int(vh) {
		g.frame = ebiten.NewImage(int(vw), int(vh))
		g.dirty = true
	}
	if g.dirty {
		g.surface.Target(g.frame, vw, vh)
		g.game.Render(g.surface)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)

	if g.state.State != core.StatePlaying {
		g.drawOverlay(screen, vw, vh)
	}
}

// button returns the overlay button box for a vw x vh viewport.
func button(vw, vh float64) core.Box {
	const w, h = 220, 56
	return core.Box{X: (vw - w) / 2, Y: vh/2 + 10, W: w, H: h}
}

func (g *Game) drawOverlay(screen *ebiten.Image, vw, vh float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(vw), float32(vh), color.RGBA{A: 0x80}, false)

	title, label := "Kampala Krane", "Start Game"
	if g.state.State == core.StateGameOver {
		title, label = "Game Over!", "Play Again"
		g.drawText(screen, fmt.Sprintf("Score: %d", g.state.Score), 24, vw/2, vh/2-20, core.ColorHUD)
	}
	g.drawText(screen, title, 40, vw/2, vh/2-80, core.ColorHUD)

	b := button(vw, vh)
	fill := core.ColorButton
	cx, cy := ebiten.CursorPosition()
	if float64(cx) >= b.X && float64(cx) < b.Right() && float64(cy) >= b.Y && float64(cy) < b.Bottom() {
		fill = core.ColorButtonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	g.drawText(screen, label, 20, vw/2, b.Y+b.H/2, color.RGBA{A: 0xff})

	g.drawText(screen, "Click or tap to make the crane fly!", 12, vw/2, vh-24, core.ColorHint)
}

// drawText centers str on (cx, cy).
func (g *Game) drawText(screen *ebiten.Image, str string, size, cx, cy float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, g.assets.Face(size), op)
}

// Layout tracks the window or canvas size. Fixed-viewport games keep
// their own size and ebiten scales them.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.resize(outsideWidth, outsideHeight)
	}
	if g.unavailable != nil {
		return outsideWidth, outsideHeight
	}
	vw, vh := g.game.Viewport()
	return int(vw), int(vh)
}

func (g *Game) resize(w, h int) {
	if err := core.ValidateViewport(w, h); err != nil {
		if g.unavailable == nil {
			g.logger.Warn("surface unavailable", "width", w, "height", h, "error", err)
		}
		g.unavailable = err
		g.driver.Stop()
		return
	}
	g.unavailable = nil
	g.game.Resize(w, h)
	g.dirty = true
	g.logger.Debug("viewport resized", "width", w, "height", h)

	if g.state.State == core.StatePlaying && !g.driver.Active() {
		g.driver.Start()
	}
}
