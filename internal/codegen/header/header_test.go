package header

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestdata(t *testing.T) io.Reader {
	t.Helper()
	var readers []io.Reader
	for _, name := range []string{"SDL_keycode.h", "SDL_scancode.h"} {
		f, err := os.Open(filepath.Join("testdata", name))
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })
		readers = append(readers, f)
	}
	return io.MultiReader(readers...)
}

func TestParseHeaders(t *testing.T) {
	c, err := Parse(openTestdata(t))
	require.NoError(t, err)

	want := map[string]int64{
		"SDLK_UNKNOWN":   0,
		"SDLK_RETURN":    13,
		"SDLK_ESCAPE":    27,
		"SDLK_BACKSPACE": 8,
		"SDLK_TAB":       9,
		"SDLK_SPACE":     32,
		"SDLK_QUOTEDBL":  34,
		"SDLK_QUOTE":     39,
		"SDLK_COMMA":     44,
		"SDLK_BACKSLASH": 92,
		"SDLK_a":         97,
		"SDLK_DELETE":    127,
		"SDLK_CAPSLOCK":  0x40000039,
		"SDLK_F1":        0x4000003A,
		"SDLK_KP_CLEAR":  0x400000D8,
		"SDLK_SLEEP":     0x4000011A,
	}
	require.Len(t, c.Keycodes, len(want))
	for _, k := range c.Keycodes {
		assert.Equal(t, want[k.Name], k.Value, k.Name)
	}

	k, ok := c.Lookup("SDLK_F1")
	require.True(t, ok)
	assert.Equal(t, "SDL_SCANCODE_F1", k.Scancode)
	assert.Equal(t, int64(58), c.Scancodes["SDL_SCANCODE_F1"])
	_, ok = c.Scancodes["SDL_NUM_SCANCODES"]
	assert.False(t, ok)
}

func TestParseDefines(t *testing.T) {
	src := "#define SDLK_SCANCODE_MASK (1u<<30)\n#define SDLK_A 0x00000061u\n#define SDLK_ESCAPE 0x0000001bu\n"
	c, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, c.Keycodes, 2)
	assert.Equal(t, Keycode{Name: "SDLK_A", Value: 0x61, Line: 2}, c.Keycodes[0])
	assert.Equal(t, int64(27), c.Keycodes[1].Value)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "undefined scancode",
			src:     "SDLK_UP = SDL_SCANCODE_TO_KEYCODE(SDL_SCANCODE_UP),\n",
			wantErr: "line 1: SDLK_UP references undefined SDL_SCANCODE_UP",
		},
		{
			name:    "duplicate",
			src:     "SDLK_a = 'a',\n\nSDLK_a = 'b',\n",
			wantErr: "line 3: SDLK_a already defined on line 1",
		},
		{
			name:    "multi-character literal",
			src:     "SDLK_X = 'ab',\n",
			wantErr: "multiple characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
