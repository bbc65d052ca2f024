package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Library is the decoded result of a load. It is read-only once the loader
// reports done.
type Library struct {
	manifest    *Manifest
	images      map[string]image.Image
	sounds      map[string][]byte
	fonts       map[string][]byte
	placeholder map[string]bool
	tints       map[string]color.RGBA
}

// Image returns a decoded image or a placeholder for missing art.
func (l *Library) Image(key string) (image.Image, error) {
	img, ok := l.images[key]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrUnknownKey, key)
	}
	return img, nil
}

// IsPlaceholder reports whether the image for key was generated.
func (l *Library) IsPlaceholder(key string) bool {
	return l.placeholder[key]
}

// Tint returns the dominant colour of a loaded image. Placeholders and fully
// transparent images have none.
func (l *Library) Tint(key string) (color.RGBA, bool) {
	c, ok := l.tints[key]
	return c, ok
}

// Sound returns the encoded OGG data for key. Missing sounds report false.
func (l *Library) Sound(key string) ([]byte, bool) {
	data, ok := l.sounds[key]
	return data, ok
}

// Font returns the raw font file for key.
func (l *Library) Font(key string) ([]byte, bool) {
	data, ok := l.fonts[key]
	return data, ok
}

// Manifest returns the manifest the library was built from.
func (l *Library) Manifest() *Manifest {
	return l.manifest
}

// Loader reads every manifest entry concurrently. Done, Progress and Err
// are safe to poll from the game loop while Start runs in the background.
type Loader struct {
	fsys     fs.FS
	manifest *Manifest
	logger   *log.Logger

	loaded atomic.Int64
	done   atomic.Bool

	mu  sync.Mutex
	err error
	lib *Library
}

// NewLoader creates a loader over fsys. A nil logger discards warnings.
func NewLoader(fsys fs.FS, m *Manifest, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fsys: fsys, manifest: m, logger: logger}
}

// Start loads in a background goroutine.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		//nolint:errcheck // Result is observed through Err and Library
		l.Load(ctx)
	}()
}

// Load reads every entry and blocks until done. The first hard error wins.
func (l *Loader) Load(ctx context.Context) (*Library, error) {
	lib := &Library{
		manifest:    l.manifest,
		images:      make(map[string]image.Image, len(l.manifest.Images)),
		sounds:      make(map[string][]byte, len(l.manifest.Sounds)),
		fonts:       make(map[string][]byte, len(l.manifest.Fonts)),
		placeholder: make(map[string]bool),
		tints:       make(map[string]color.RGBA),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, key := range l.manifest.ImageKeys() {
		key := key
		entry := l.manifest.Images[key]
		g.Go(func() error {
			img, generated, err := l.loadImage(ctx, key, entry)
			if err != nil {
				return err
			}
			var tint color.RGBA
			if !generated {
				tint = Dominant(img)
			}
			mu.Lock()
			lib.images[key] = img
			if generated {
				lib.placeholder[key] = true
			} else if tint.A != 0 {
				lib.tints[key] = tint
			}
			mu.Unlock()
			l.loaded.Add(1)
			return nil
		})
	}

	for _, key := range sortedKeys(l.manifest.Sounds) {
		key := key
		path := l.manifest.Sounds[key]
		g.Go(func() error {
			data, err := l.readOptional(ctx, path)
			if err != nil {
				return fmt.Errorf("assets: sound %q: %w", key, err)
			}
			if data == nil {
				l.logger.Warn("sound missing, playing silence", "key", key, "path", path)
			} else {
				mu.Lock()
				lib.sounds[key] = data
				mu.Unlock()
			}
			l.loaded.Add(1)
			return nil
		})
	}

	for _, key := range sortedKeys(l.manifest.Fonts) {
		key := key
		path := l.manifest.Fonts[key]
		g.Go(func() error {
			data, err := l.readOptional(ctx, path)
			if err != nil {
				return fmt.Errorf("assets: font %q: %w", key, err)
			}
			if data == nil {
				l.logger.Warn("font missing, using fallback face", "key", key, "path", path)
			} else {
				mu.Lock()
				lib.fonts[key] = data
				mu.Unlock()
			}
			l.loaded.Add(1)
			return nil
		})
	}

	err := g.Wait()

	l.mu.Lock()
	l.err = err
	if err == nil {
		l.lib = lib
	}
	l.mu.Unlock()
	l.done.Store(true)

	if err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *Loader) loadImage(ctx context.Context, key string, entry ImageEntry) (image.Image, bool, error) {
	data, err := l.readOptional(ctx, entry.Path)
	if err != nil {
		return nil, false, fmt.Errorf("assets: image %q: %w", key, err)
	}
	if data == nil {
		fill, _ := parseHexColor(entry.Color)
		l.logger.Warn("image missing, using placeholder", "key", key, "path", entry.Path)
		return Placeholder(entry.Width, entry.Height, fill), true, nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("assets: decode %s: %w", entry.Path, err)
	}
	return img, false, nil
}

// readOptional returns nil data for a missing file.
func (l *Loader) readOptional(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Done reports whether loading finished without error.
func (l *Loader) Done() bool {
	return l.done.Load() && l.Err() == nil
}

// Finished reports whether loading stopped, successfully or not.
func (l *Loader) Finished() bool {
	return l.done.Load()
}

// Progress returns the fraction of entries processed.
func (l *Loader) Progress() float64 {
	total := l.manifest.Count()
	if total == 0 {
		return 1
	}
	return float64(l.loaded.Load()) / float64(total)
}

// Err returns the load error, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Library returns the loaded assets, or nil until Done.
func (l *Loader) Library() *Library {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lib
}

// Tint reads the dominant colour of key from the loaded library. It reports
// false until loading is done.
func (l *Loader) Tint(key string) (color.RGBA, bool) {
	lib := l.Library()
	if lib == nil {
		return color.RGBA{}, false
	}
	return lib.Tint(key)
}
