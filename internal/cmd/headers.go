package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/keybind/sdlkey/internal/codegen/header"
)

// Headers locates the SDL headers the key code table is derived from.
type Headers struct {
	Header         string `help:"Path to SDL_keycode.h" default:"/usr/include/SDL2/SDL_keycode.h" type:"path" env:"SDLKEY_HEADER"`
	ScancodeHeader string `help:"Path to SDL_scancode.h" default:"/usr/include/SDL2/SDL_scancode.h" type:"path" env:"SDLKEY_SCANCODE_HEADER"`
}

// Parse reads both headers.
func (h Headers) Parse() (*header.Constants, error) {
	var readers []io.Reader
	for _, p := range []string{h.Header, h.ScancodeHeader} {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open header: %w", err)
		}
		defer f.Close()
		readers = append(readers, f)
	}
	c, err := header.Parse(io.MultiReader(readers...))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", h.Header, err)
	}
	return c, nil
}
