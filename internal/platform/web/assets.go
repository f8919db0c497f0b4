package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // scene backgrounds
	_ "image/png"  // crane frames
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/games/krane"
)

// maxConcurrentFetches bounds parallel asset downloads.
const maxConcurrentFetches = 4

// Fetcher retrieves the bytes of an asset source.
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// HTTPFetcher fetches sources over HTTP. Relative sources resolve
// against Base.
type HTTPFetcher struct {
	Client *http.Client
	Base   string
}

// Fetch implements Fetcher.
func (f HTTPFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	u, err := resolve(f.Base, src)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("web: request %s: %w", u, err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web: fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web: fetch %s: status %s", u, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func resolve(base, src string) (string, error) {
	ref, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("web: bad source %q: %w", src, err)
	}
	if ref.IsAbs() || base == "" {
		return ref.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("web: bad base %q: %w", base, err)
	}
	return b.ResolveReference(ref).String(), nil
}

// DirFetcher reads relative sources from Root and hands absolute URLs
// to Remote.
type DirFetcher struct {
	Root   string
	Remote Fetcher
}

// Fetch implements Fetcher.
func (f DirFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	if isRemote(src) {
		if f.Remote == nil {
			return nil, fmt.Errorf("web: no remote fetcher for %s", src)
		}
		return f.Remote.Fetch(ctx, src)
	}
	data, err := os.ReadFile(filepath.Join(f.Root, filepath.FromSlash(src)))
	if err != nil {
		return nil, fmt.Errorf("web: read asset: %w", err)
	}
	return data, nil
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// AssetLoader downloads and decodes images in the background. Nothing
// waits on it: an image is drawable once ImageReady reports true.
type AssetLoader struct {
	fetcher Fetcher
	logger  *log.Logger
	wg      sync.WaitGroup

	mu      sync.Mutex
	decoded map[canvas.ImageID]image.Image
	images  map[canvas.ImageID]*ebiten.Image
	failed  map[canvas.ImageID]error
	font    *opentype.Font
	faces   map[float64]text.Face

	fallback text.Face
}

// NewAssetLoader creates a loader backed by f.
func NewAssetLoader(f Fetcher, logger *log.Logger) *AssetLoader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AssetLoader{
		fetcher:  f,
		logger:   logger,
		decoded:  make(map[canvas.ImageID]image.Image),
		images:   make(map[canvas.ImageID]*ebiten.Image),
		failed:   make(map[canvas.ImageID]error),
		faces:    make(map[float64]text.Face),
		fallback: text.NewGoXFace(bitmapfont.Face),
	}
}

// Load starts fetching every asset. It returns immediately.
func (l *AssetLoader) Load(ctx context.Context, assets []krane.Asset) {
	sem := make(chan struct{}, maxConcurrentFetches)
	for _, a := range assets {
		l.wg.Add(1)
		go func(a krane.Asset) {
			defer l.wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				l.fail(a.ID, ctx.Err())
				return
			}
			l.loadImage(ctx, a)
		}(a)
	}
}

func (l *AssetLoader) loadImage(ctx context.Context, a krane.Asset) {
	data, err := l.fetcher.Fetch(ctx, a.Source)
	if err != nil {
		l.fail(a.ID, err)
		return
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.fail(a.ID, fmt.Errorf("web: decode %s: %w", a.ID, err))
		return
	}

	l.mu.Lock()
	l.decoded[a.ID] = img
	l.mu.Unlock()
	l.logger.Debug("asset loaded", "id", a.ID, "size", img.Bounds().Size())
}

func (l *AssetLoader) fail(id canvas.ImageID, err error) {
	l.mu.Lock()
	l.failed[id] = err
	l.mu.Unlock()
	l.logger.Warn("asset failed", "id", id, "error", err)
}

// LoadFont parses a display font in the background. Until it is ready
// Face returns the bitmap fallback.
func (l *AssetLoader) LoadFont(ttf []byte) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		f, err := opentype.Parse(ttf)
		if err != nil {
			l.logger.Warn("font failed", "error", err)
			return
		}
		l.mu.Lock()
		l.font = f
		l.mu.Unlock()
		l.logger.Debug("font loaded")
	}()
}

// Wait blocks until every started load has finished.
func (l *AssetLoader) Wait() {
	l.wg.Wait()
}

// ImageReady reports whether id has been decoded.
func (l *AssetLoader) ImageReady(id canvas.ImageID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.decoded[id]
	return ok
}

// Err returns why id failed to load, or nil.
func (l *AssetLoader) Err(id canvas.ImageID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed[id]
}

// Image returns the GPU image for id, uploading it on first use. Call it
// from the draw goroutine only.
func (l *AssetLoader) Image(id canvas.ImageID) (*ebiten.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[id]; ok {
		return img, true
	}
	src, ok := l.decoded[id]
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	l.images[id] = img
	return img, true
}

// ErrNoFont is returned by DisplayFace before the display font is ready.
var ErrNoFont = errors.New("web: display font not loaded")

// DisplayFace returns the display font at size.
func (l *AssetLoader) DisplayFace(size float64) (text.Face, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.font == nil {
		return nil, ErrNoFont
	}
	if f, ok := l.faces[size]; ok {
		return f, nil
	}
	face, err := opentype.NewFace(l.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("web: font face %.0f: %w", size, err)
	}
	f := text.NewGoXFace(face)
	l.faces[size] = f
	return f, nil
}

// Face returns the display font at size, or the bitmap fallback while
// the display font is still loading.
func (l *AssetLoader) Face(size float64) text.Face {
	if f, err := l.DisplayFace(size); err == nil {
		return f
	}
	return l.fallback
}
