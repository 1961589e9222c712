package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keybind/sdlkey/internal/cmd"
	sdltesting "github.com/keybind/sdlkey/internal/testing"
	"github.com/keybind/sdlkey/keycode"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

type doc struct {
	Keys []cmd.Row `json:"keys" yaml:"keys" toml:"keys"`
}

func TestLookup(t *testing.T) {
	var out bytes.Buffer
	l := cmd.Lookup{Keys: []string{"27", "0x40000039", "sdlk_a", "Unknown"}, Output: cmd.Output{Format: "json"}}
	require.NoError(t, l.Run(sdltesting.Logger(t), &out))

	var got doc
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Keys, 4)

	assert.Equal(t, cmd.Row{
		Name: "Escape", SDLName: "SDLK_ESCAPE", Value: 27, Hex: "0x0000001B",
		Usage: "0x29", Hash: got.Keys[0].Hash,
	}, got.Keys[0])
	assert.Equal(t, "CapsLock", got.Keys[1].Name)
	assert.Equal(t, uint32(57), got.Keys[1].Scancode)
	assert.Equal(t, "A", got.Keys[2].Name)
	assert.Equal(t, int64(0), got.Keys[3].Value)
	assert.Len(t, got.Keys[0].Hash, 16)
}

func TestLookupUnknown(t *testing.T) {
	var out bytes.Buffer
	l := cmd.Lookup{Keys: []string{"-999999", "Escape", "Hyper"}, Output: cmd.Output{Format: "text", Color: "never"}}
	err := l.Run(sdltesting.Logger(t), &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, keycode.ErrUnknownKeyCode)
	assert.Contains(t, err.Error(), "2 of 3 keys unresolved")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "SDLK_ESCAPE")
	assert.NotContains(t, out.String(), "\x1b[", "no color when disabled")
}

func TestListFormats(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			l := cmd.List{Filter: "kp_mem", Output: cmd.Output{Format: tt.format}}
			require.NoError(t, l.Run(sdltesting.Logger(t), &out))

			var got doc
			require.NoError(t, tt.decode(out.Bytes(), &got))
			require.Len(t, got.Keys, 7)
			assert.Equal(t, "KpMemStore", got.Keys[0].Name)
			assert.Equal(t, keycode.KpMemStore.Int64(), got.Keys[0].Value)
		})
	}
}

func TestListText(t *testing.T) {
	var out bytes.Buffer
	l := cmd.List{Modifier: true, Output: cmd.Output{Format: "text", Color: "always"}}
	require.NoError(t, l.Run(sdltesting.Logger(t), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 9)
	assert.Contains(t, lines[0], "LCtrl")
	assert.Contains(t, lines[0], "\x1b[")
	assert.Contains(t, lines[0], "hid=0xE0")
}

func TestListAll(t *testing.T) {
	var out bytes.Buffer
	l := cmd.List{Output: cmd.Output{Format: "json"}}
	require.NoError(t, l.Run(sdltesting.Logger(t), &out))

	var got doc
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Keys, keycode.Len())
}

func TestGen(t *testing.T) {
	kh, sh := sdltesting.HeaderPaths(t)
	out := filepath.Join(t.TempDir(), "keycode_table.go")

	g := cmd.Gen{Headers: cmd.Headers{Header: kh, ScancodeHeader: sh}, Out: out}
	require.NoError(t, g.Run(sdltesting.Logger(t)))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package keycode")
	assert.Contains(t, string(src), `{KpClear, "KpClear", "SDLK_KP_CLEAR"},`)
	assert.Contains(t, string(src), "ScancodeMask | 216")
	assert.NotContains(t, string(src), keycode.TableDigest, "a partial header has a different digest")
}

func TestGenMissingHeader(t *testing.T) {
	g := cmd.Gen{Headers: cmd.Headers{Header: "/does/not/exist.h", ScancodeHeader: "/does/not/exist.h"}, Out: filepath.Join(t.TempDir(), "x.go")}
	assert.ErrorContains(t, g.Run(sdltesting.Logger(t)), "open header")
}

func TestVerify(t *testing.T) {
	kh, sh := sdltesting.HeaderPaths(t)
	var out bytes.Buffer
	v := cmd.Verify{Headers: cmd.Headers{Header: kh, ScancodeHeader: sh}}
	err := v.Run(sdltesting.Logger(t), &out)

	require.ErrorIs(t, err, cmd.ErrOutOfSync)
	// The sample header carries 16 of the key codes; the rest are reported missing.
	assert.Equal(t, keycode.Len()-16, strings.Count(out.String(), "missing: "))
	assert.NotContains(t, out.String(), "changed: ")
}

func TestConfigInitDefaultDestination(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("AppData", home)

	c := cmd.ConfigInit{Command: "list", Format: "yaml"}
	require.NoError(t, c.Run(sdltesting.Logger(t)))

	dest := filepath.Join(home, "sdlkey", "config.yaml")
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "text", got["format"])

	assert.Error(t, c.Run(sdltesting.Logger(t)), "existing file is kept without --force")
	c.Force = true
	assert.NoError(t, c.Run(sdltesting.Logger(t)))
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(dir, "gen."+format)
			c := cmd.ConfigInit{Command: "gen", Format: format, Output: dest}
			require.NoError(t, c.Run(sdltesting.Logger(t)))

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var got map[string]any
			switch format {
			case "json":
				require.NoError(t, json.Unmarshal(data, &got))
			case "yaml":
				require.NoError(t, yaml.Unmarshal(data, &got))
			case "toml":
				require.NoError(t, toml.Unmarshal(data, &got))
			}
			assert.Equal(t, "/usr/include/SDL2/SDL_keycode.h", got["header"])
			assert.Equal(t, "/usr/include/SDL2/SDL_scancode.h", got["scancode_header"])
			assert.Equal(t, "keycode/keycode_table.go", got["out"])
			logCfg, ok := got["log"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "info", logCfg["level"])

			assert.ErrorContains(t, c.Run(sdltesting.Logger(t)), "destination exists")
			c.Force = true
			assert.NoError(t, c.Run(sdltesting.Logger(t)))
		})
	}
}
