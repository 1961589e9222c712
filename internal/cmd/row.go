package cmd

import (
	"fmt"

	"github.com/keybind/sdlkey/hid"
	"github.com/keybind/sdlkey/keycode"
)

// Row is the printable description of one key code.
type Row struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	SDLName  string `json:"sdl" yaml:"sdl" toml:"sdl"`
	Value    int64  `json:"value" yaml:"value" toml:"value"`
	Hex      string `json:"hex" yaml:"hex" toml:"hex"`
	Scancode uint32 `json:"scancode,omitempty" yaml:"scancode,omitempty" toml:"scancode,omitempty"`
	Usage    string `json:"hidUsage,omitempty" yaml:"hidUsage,omitempty" toml:"hidUsage,omitempty"`
	Hash     string `json:"hash" yaml:"hash" toml:"hash"`
}

func newRow(k keycode.KeyCode) Row {
	r := Row{
		Name:    k.String(),
		SDLName: k.SDLName(),
		Value:   k.Int64(),
		Hex:     fmt.Sprintf("0x%08X", k.Uint64()),
		Hash:    fmt.Sprintf("%016x", k.Hash()),
	}
	if sc, ok := k.Scancode(); ok {
		r.Scancode = sc
	}
	if u, ok := hid.FromKeyCode(k); ok {
		r.Usage = fmt.Sprintf("0x%02X", uint8(u))
	}
	return r
}
