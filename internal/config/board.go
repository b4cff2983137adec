package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gorilla/schema"
)

var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]struct {
	width, height uint16
	bombs         int
}{
	"beginner":     {9, 9, 10},
	"intermediate": {16, 16, 40},
	"expert":       {30, 16, 99},
}

// Presets lists the names accepted by [Board.ApplyPreset].
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ApplyPreset sets the grid size and bomb count of a named difficulty.
func (b *Board) ApplyPreset(name string) error {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf(
			"%w %q, must be one of %s",
			ErrUnknownPreset, name, strings.Join(Presets(), ", "),
		)
	}
	b.Width, b.Height, b.BombCount = p.width, p.height, p.bombs
	return nil
}

// ParseBoardQuery overrides the fields of base named in a url-encoded query,
// e.g. "width=9&height=9&bomb_count=10&tile_size.fixed=30".
func ParseBoardQuery(query string, base Board) (Board, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return base, fmt.Errorf("invalid board query: %w", err)
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)

	b := base
	if base.Position.Custom != nil {
		custom := *base.Position.Custom
		b.Position.Custom = &custom
	}
	if err := dec.Decode(&b, values); err != nil {
		return base, fmt.Errorf("invalid board query: %w", err)
	}
	return b, nil
}
