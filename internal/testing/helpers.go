// Package testing holds helpers shared by the package tests.
package testing

import (
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"
)

// Logger returns a logger that discards everything below warn.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// HeaderPaths returns the sample SDL_keycode.h and SDL_scancode.h shipped
// with the header parser tests.
func HeaderPaths(t *testing.T) (keycodeHeader, scancodeHeader string) {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate test helpers")
	}
	dir := filepath.Join(filepath.Dir(file), "..", "codegen", "header", "testdata")
	return filepath.Join(dir, "SDL_keycode.h"), filepath.Join(dir, "SDL_scancode.h")
}
