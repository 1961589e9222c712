// Package generator turns parsed SDL header constants into the Go key code
// table and checks a compiled table against a header.
package generator

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/keybind/sdlkey/internal/codegen/common"
	"github.com/keybind/sdlkey/internal/codegen/header"
	"github.com/keybind/sdlkey/keycode"
)

// Entry is one row of the generated table.
type Entry struct {
	GoName  string
	SDLName string
	Value   int64
}

// Expr returns the Go constant expression for the entry's value.
func (e Entry) Expr() string {
	if e.Value&header.ScancodeMask != 0 {
		return fmt.Sprintf("ScancodeMask | %d", e.Value&^header.ScancodeMask)
	}
	return fmt.Sprintf("%d", e.Value)
}

// Generator builds tables from header constants.
type Generator struct {
	logger *slog.Logger
	known  map[string]string
}

// New returns a Generator that keeps the Go names of the compiled table and
// derives names for constants it has not seen before.
func New(logger *slog.Logger) *Generator {
	known := make(map[string]string, keycode.Len())
	for _, k := range keycode.All() {
		known[k.SDLName()] = k.String()
	}
	return &Generator{logger: logger, known: known}
}

// Entries converts parsed constants into table rows sorted by value. Two
// constants sharing a value or a Go name are an error: the table must stay
// injective.
func (g *Generator) Entries(c *header.Constants) ([]Entry, error) {
	entries := make([]Entry, 0, len(c.Keycodes))
	names := map[string]string{}
	values := map[int64]string{}

	for _, k := range c.Keycodes {
		if k.Value < 0 || k.Value > 1<<31-1 {
			return nil, fmt.Errorf("%s: value %d outside SDL_Keycode range", k.Name, k.Value)
		}
		name, ok := g.known[k.Name]
		if !ok {
			name = common.GoName(k.Name)
			g.logger.Warn("New SDL key code", "sdl", k.Name, "name", name, "value", k.Value)
		}
		if prev, dup := names[name]; dup {
			return nil, fmt.Errorf("%s and %s both map to Go name %s", prev, k.Name, name)
		}
		if prev, dup := values[k.Value]; dup {
			return nil, fmt.Errorf("%s and %s share value %d", prev, k.Name, k.Value)
		}
		names[name] = k.Name
		values[k.Value] = k.Name
		entries = append(entries, Entry{GoName: name, SDLName: k.Name, Value: k.Value})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	g.logger.Debug("Built key code table", "entries", len(entries))
	return entries, nil
}
