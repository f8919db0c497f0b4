//go:build js && wasm

package main

import (
	"os"
	"syscall/js"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	// Import games to register them
	_ "github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/platform/web"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "krane-web"})

	base := js.Global().Get("location").Get("href").String()
	g, err := newGame(settings{Sound: true}, web.HTTPFetcher{Base: base}, logger)
	if err != nil {
		logger.Fatal("could not start", "error", err)
	}

	// Hooks for the surrounding page
	js.Global().Set("kraneState", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		s := g.State()
		return js.ValueOf(map[string]interface{}{
			"gameState": s.State.String(),
			"score":     s.Score,
		})
	}))
	js.Global().Set("kraneTap", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		g.Tap()
		return nil
	}))

	configureWindow()
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}
