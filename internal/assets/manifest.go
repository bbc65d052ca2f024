// Package assets loads the game's images, sounds and fonts from an fs.FS
// described by a YAML manifest.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrUnknownKey is returned when a key is not listed in the manifest.
var ErrUnknownKey = errors.New("assets: unknown key")

// ImageEntry describes one image of the manifest.
type ImageEntry struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

// Manifest maps asset keys to paths inside the asset root.
type Manifest struct {
	Images map[string]ImageEntry `yaml:"images"`
	Sounds map[string]string     `yaml:"sounds"`
	Fonts  map[string]string     `yaml:"fonts"`
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultManifest)
}

// ParseManifest decodes and validates a manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	for key, img := range m.Images {
		if img.Path == "" {
			return nil, fmt.Errorf("assets: image %q has no path", key)
		}
		if img.Width <= 0 || img.Height <= 0 {
			return nil, fmt.Errorf("assets: image %q has no size", key)
		}
		if _, err := parseHexColor(img.Color); err != nil {
			return nil, fmt.Errorf("assets: image %q: %w", key, err)
		}
	}
	return &m, nil
}

// Count returns the number of entries the loader will process.
func (m *Manifest) Count() int {
	return len(m.Images) + len(m.Sounds) + len(m.Fonts)
}

// Size returns the canonical size of an image key.
func (m *Manifest) Size(key string) (w, h int, err error) {
	img, ok := m.Images[key]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return img.Width, img.Height, nil
}

// ImageKeys returns the image keys in sorted order.
func (m *Manifest) ImageKeys() []string {
	return sortedKeys(m.Images)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if s == "" {
		c.R, c.G, c.B = 0xff, 0x00, 0xff
		return c, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}
