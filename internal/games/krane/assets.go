package krane

import (
	"fmt"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
)

// SceneAsset returns the image id of a background scene.
func SceneAsset(name string) canvas.ImageID {
	return canvas.ImageID("scene/" + name)
}

// FrameAsset returns the image id of sprite animation frame i.
func FrameAsset(i int) canvas.ImageID {
	return canvas.ImageID(fmt.Sprintf("crane/%02d", i))
}

// Asset locates an image. Source is either an absolute URL or a path
// relative to the frontend's asset root.
type Asset struct {
	ID     canvas.ImageID
	Source string
}

var craneFrameURLs = []string{
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_00-ORwunvOGjBjVkhr2IkykzW3oevDnYB.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_01-xR9Rse1xNzsiKfBdyXmczNHr5Ar2pk.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_02-V4C7se5xxZSNmZeEffdgbqkkvaC1n5.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_03-7waLEFxv1ucpLEKnvR42Nf3nnDe4oI.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_04-6stDK1ZCCk7l1TWeCkHiHxvNgFILMS.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_05-QbL5uKFvMLo2IAoBbcxnCJwZIw3wyO.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_06-RMwQzc18HVzokPwyO77GTFoKLqsawv.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_07-XQvUckVLucjinuDLZUlafq7oUDiVCz.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_08-k9e2PyOVP2iReaTO8sD1uh6jUUaqvH.png",
	"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skeleton-animation_09-Dh8dfG0kmKmvL6JRmp9Vc89QD8xKiY.png",
}

var sceneFiles = map[string]string{
	"kampala": "background.jpg",
	"mbarara": "Mbarara.jpg",
	"jinja":   "jijnja.jpg",
}

// Manifest lists every image the renderer may ask for under cfg.
// Frames beyond the bundled artwork fall back to relative paths.
func Manifest(cfg config.KraneConfig) []Asset {
	var assets []Asset
	for _, s := range cfg.Scenes {
		src, ok := sceneFiles[s.Asset]
		if !ok {
			src = s.Asset + ".jpg"
		}
		assets = append(assets, Asset{ID: SceneAsset(s.Asset), Source: src})
	}
	for i := 0; i < cfg.Animation.Frames; i++ {
		src := fmt.Sprintf("crane/%02d.png", i)
		if i < len(craneFrameURLs) {
			src = craneFrameURLs[i]
		}
		assets = append(assets, Asset{ID: FrameAsset(i), Source: src})
	}
	return assets
}
