// Package assets resolves logical sprite names to opaque handles and
// terminal glyphs. Entities request sprites by name at construction time
// and only ever hold the returned Handle.
package assets

import (
	_ "embed"
	"fmt"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fishrun/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Handle is an opaque reference to a loaded sprite. The zero Handle is invalid.
type Handle struct {
	id int
}

// Valid reports whether the handle came from a successful Load.
func (h Handle) Valid() bool {
	return h.id > 0
}

// Loader resolves a logical sprite name.
type Loader interface {
	Load(name string) (Handle, error)
}

// Glyph is how a sprite is drawn on the terminal.
type Glyph struct {
	Rune  rune
	Color core.Color
}

type spriteFile struct {
	Sprites map[string]spriteEntry `yaml:"sprites"`
}

type spriteEntry struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Atlas is a Loader backed by a YAML sprite table.
type Atlas struct {
	ids    map[string]int
	names  []string
	glyphs []Glyph // indexed by handle id; slot 0 is unused
}

// DefaultAtlas parses the embedded sprite table.
func DefaultAtlas() (*Atlas, error) {
	return ParseAtlas(defaultSpritesYAML)
}

// ParseAtlas builds an atlas from YAML.
func ParseAtlas(data []byte) (*Atlas, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite table: %w", err)
	}
	if len(f.Sprites) == 0 {
		return nil, fmt.Errorf("assets: sprite table is empty")
	}

	// Sorted so handle ids are stable across runs
	names := make([]string, 0, len(f.Sprites))
	for name := range f.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	a := &Atlas{
		ids:    make(map[string]int, len(names)),
		names:  append([]string{""}, names...),
		glyphs: make([]Glyph, 1, len(names)+1),
	}
	for _, name := range names {
		e := f.Sprites[name]
		r, size := utf8.DecodeRuneInString(e.Glyph)
		if size == 0 || r == utf8.RuneError || size != len(e.Glyph) {
			return nil, fmt.Errorf("assets: sprite %q: glyph must be a single character, got %q", name, e.Glyph)
		}
		c, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("assets: sprite %q: unknown color %q", name, e.Color)
		}
		a.ids[name] = len(a.glyphs)
		a.glyphs = append(a.glyphs, Glyph{Rune: r, Color: c})
	}
	return a, nil
}

// Load implements Loader.
func (a *Atlas) Load(name string) (Handle, error) {
	id, ok := a.ids[name]
	if !ok {
		return Handle{}, fmt.Errorf("assets: unknown sprite %q", name)
	}
	return Handle{id: id}, nil
}

// Glyph returns the glyph for h. Invalid handles draw as '?'.
func (a *Atlas) Glyph(h Handle) Glyph {
	if h.id <= 0 || h.id >= len(a.glyphs) {
		return Glyph{Rune: '?', Color: core.ColorDefault}
	}
	return a.glyphs[h.id]
}

// Name returns the logical name h was loaded from.
func (a *Atlas) Name(h Handle) string {
	if h.id <= 0 || h.id >= len(a.names) {
		return ""
	}
	return a.names[h.id]
}
