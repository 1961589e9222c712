package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/keybind/sdlkey/internal/codegen/generator"
	"github.com/keybind/sdlkey/keycode"
)

// ErrOutOfSync is returned by verify when the compiled table differs from the headers.
var ErrOutOfSync = errors.New("key code table out of sync with SDL headers")

// Verify checks the compiled table against the SDL headers.
type Verify struct {
	Headers `embed:""`
}

// Run is called by Kong when the verify command is executed.
func (v *Verify) Run(logger *slog.Logger, w io.Writer) error {
	c, err := v.Parse()
	if err != nil {
		return err
	}

	mismatches := generator.Verify(c)
	for _, m := range mismatches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	if len(mismatches) > 0 {
		logger.Error("Key code table out of sync", "mismatches", len(mismatches), "header", v.Header)
		return fmt.Errorf("%d differences: %w", len(mismatches), ErrOutOfSync)
	}

	logger.Info("Key code table in sync", "keys", keycode.Len(), "digest", keycode.TableDigest)
	_, err = fmt.Fprintf(w, "ok: %d key codes match %s\n", keycode.Len(), v.Header)
	return err
}
