package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/keybind/sdlkey/keycode"
)

// List prints the key code table.
type List struct {
	Filter   string `help:"Only keys whose Go or SDL name contains this text (case-insensitive)" short:"F"`
	Keypad   bool   `help:"Only keypad keys"`
	Modifier bool   `help:"Only modifier keys"`
	Output   `embed:""`
}

func (l *List) match(k keycode.KeyCode) bool {
	if l.Keypad && !k.IsKeypad() {
		return false
	}
	if l.Modifier && !k.IsModifier() {
		return false
	}
	if l.Filter == "" {
		return true
	}
	f := strings.ToLower(l.Filter)
	return strings.Contains(strings.ToLower(k.String()), f) ||
		strings.Contains(strings.ToLower(k.SDLName()), f)
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger, w io.Writer) error {
	var rows []Row
	for _, k := range keycode.All() {
		if l.match(k) {
			rows = append(rows, newRow(k))
		}
	}
	logger.Debug("Listing key codes", "matched", len(rows), "total", keycode.Len())
	return l.write(w, rows)
}
