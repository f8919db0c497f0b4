package krane

import (
	"image/color"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
)

// Terminal renditions of the scenes. Each skyline tiles along the bottom
// of the backdrop.
var sceneArt = map[string]canvas.Art{
	"kampala": {
		Lines: []string{
			"      ▗▖          ▄▄        ▗▄▖       ",
			"  ▄▖ ▐██▌  ▗▄▖  ▐████▌  ▄▄ ▐███▌ ▗▄▖  ",
			"▄███▄███▙▄▟███▙▄██████▄████▟████▄███▙▄",
		},
		Fg:       color.RGBA{R: 0x2b, G: 0x22, B: 0x33, A: 0xff},
		Backdrop: true,
		Top:      color.RGBA{R: 0x1c, G: 0x3f, B: 0x80, A: 0xff},
		Bottom:   color.RGBA{R: 0xf0, G: 0x8c, B: 0x4a, A: 0xff},
	},
	"mbarara": {
		Lines: []string{
			"        ▁▂▃▂▁                  ▁▂▂▁     ",
			"   ▁▂▃▄▅▆▇▇▆▅▄▃▂▁    ▁▂▃▄▅▄▃▂▁▂▃▄▅▆▆▅▃▂▁",
			"▂▃▄▅▆▇███████████▇▆▅▆▇█████████████████▇",
		},
		Fg:       color.RGBA{R: 0x2f, G: 0x5d, B: 0x2a, A: 0xff},
		Backdrop: true,
		Top:      color.RGBA{R: 0x3a, G: 0x7b, B: 0xc8, A: 0xff},
		Bottom:   color.RGBA{R: 0xf5, G: 0xd0, B: 0x8a, A: 0xff},
	},
	"jinja": {
		Lines: []string{
			"  ▄▄▖      ▗▄▄▄▖         ▗▄▖   ",
			"≈≈███≈~≈≈~≈█████≈~≈~≈≈~≈≈███≈~≈",
			"~≈≈~≈≈~≈~≈≈~≈~≈≈~≈≈~≈~≈≈~≈≈~≈≈~",
		},
		Fg:       color.RGBA{R: 0x9f, G: 0xd8, B: 0xf0, A: 0xff},
		Backdrop: true,
		Top:      color.RGBA{R: 0x24, G: 0x1e, B: 0x4e, A: 0xff},
		Bottom:   color.RGBA{R: 0xe0, G: 0x6d, B: 0x53, A: 0xff},
	},
}

// Wing poses of the crane, cycled across the animation frames.
var cranePoses = [][]string{
	{"╲ ╱ ", "▄█▀▶"},
	{"─┬─ ", "▄█▀▶"},
	{"    ", "▀█▄▶"},
	{"─┬─ ", "▄█▀▶"},
}

func tilt(pose []string, nose string) []string {
	out := append([]string(nil), pose...)
	last := []rune(out[len(out)-1])
	last[len(last)-1] = []rune(nose)[0]
	out[len(out)-1] = string(last)
	return out
}

// CellArt returns glyph art for every image in cfg's manifest, for
// frontends that draw on a canvas.Cells.
func CellArt(cfg config.KraneConfig) map[canvas.ImageID]canvas.Art {
	art := make(map[canvas.ImageID]canvas.Art)
	for _, s := range cfg.Scenes {
		if a, ok := sceneArt[s.Asset]; ok {
			art[SceneAsset(s.Asset)] = a
		}
	}
	for i := 0; i < cfg.Animation.Frames; i++ {
		pose := cranePoses[i%len(cranePoses)]
		art[FrameAsset(i)] = canvas.Art{
			Lines: pose,
			Up:    tilt(pose, "◥"),
			Down:  tilt(pose, "◢"),
			Fg:    color.RGBA{R: 0xf8, G: 0xf8, B: 0xf0, A: 0xff},
		}
	}
	return art
}
