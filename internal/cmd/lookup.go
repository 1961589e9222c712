package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/keybind/sdlkey/keycode"
)

// Lookup resolves raw integers or names to key codes.
type Lookup struct {
	Keys   []string `arg:"" name:"key" help:"Raw key code (decimal or 0x hex) or key name"`
	Output `embed:""`
}

// Run is called by Kong when the lookup command is executed.
func (l *Lookup) Run(logger *slog.Logger, w io.Writer) error {
	var rows []Row
	var errs []error
	for _, arg := range l.Keys {
		k, err := resolve(arg)
		if err != nil {
			logger.Warn("Unrecognized key", "input", arg, "error", err)
			errs = append(errs, err)
			continue
		}
		logger.Debug("Resolved key", "input", arg, "key", k.String())
		rows = append(rows, newRow(k))
	}
	if err := l.write(w, rows); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d keys unresolved: %w", len(errs), len(l.Keys), errors.Join(errs...))
	}
	return nil
}

func resolve(arg string) (keycode.KeyCode, error) {
	if n, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return keycode.Lookup(n)
	}
	return keycode.ParseName(arg)
}
