package tui

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Overlay copy shown outside of play.
const (
	titleText    = "Kampala Krane"
	startText    = "Start Game"
	gameOverText = "Game Over!"
	againText    = "Play Again"
	hintText     = "Click or tap to make the crane fly!"
)

// overlayLines returns the panel rows for a state, or nil while playing.
func overlayLines(gs core.GameState) []string {
	switch gs.State {
	case core.StateReady:
		return []string{titleText, "", startText}
	case core.StateGameOver:
		return []string{gameOverText, "", againText, "", fmt.Sprintf("Score: %d", gs.Score)}
	default:
		return nil
	}
}

// drawOverlay paints the ready or game-over panel centered on s.
func drawOverlay(s *core.Screen, gs core.GameState) {
	lines := overlayLines(gs)
	if lines == nil {
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := core.NewRect(0, 0, w+6, len(lines)+2)
	// Narrow screens keep the panel's left side visible.
	box.X = core.Clamp((s.Width()-box.W)/2, 0, s.Width())
	box.Y = core.Clamp((s.Height()-box.H)/2, 0, s.Height())

	s.FillRect(box, core.ColorFrame)
	s.DrawBox(box)
	for i, l := range lines {
		fg := core.ColorHUD
		if l == startText || l == againText {
			drawButton(s, box, box.Y+1+i, l)
			continue
		}
		drawCentered(s, box, box.Y+1+i, l, fg)
	}
}

func drawButton(s *core.Screen, box core.Rect, y int, label string) {
	label = " " + label + " "
	x := box.X + (box.W-utf8.RuneCountInString(label))/2
	s.FillRect(core.NewRect(x, y, utf8.RuneCountInString(label), 1), core.ColorButton)
	s.DrawTextFg(x, y, label, color.RGBA{A: 0xff})
}

func drawCentered(s *core.Screen, box core.Rect, y int, text string, fg color.RGBA) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	s.DrawTextFg(x, y, text, fg)
}

// drawUnavailable replaces the frame with a notice when the terminal is
// too small to host a run.
func drawUnavailable(s *core.Screen, err error) {
	s.Clear()
	msg := "Terminal too small"
	if err != nil {
		msg = err.Error()
	}
	s.DrawTextCentered(s.Height()/2, msg)
}
