// Package header reads the key code and scancode constants out of the SDL2
// C headers (SDL_keycode.h, SDL_scancode.h).
package header

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ScancodeMask mirrors SDLK_SCANCODE_MASK.
const ScancodeMask = 1 << 30

// Keycode is a single SDLK_* constant.
type Keycode struct {
	Name     string // e.g. "SDLK_ESCAPE"
	Value    int64
	Scancode string // referenced SDL_SCANCODE_* name, empty for character codes
	Line     int
}

// Constants holds everything parsed from the headers.
type Constants struct {
	Keycodes  []Keycode
	Scancodes map[string]int64
}

var (
	scancodeRe = regexp.MustCompile(`^\s*(SDL_SCANCODE_\w+)\s*=\s*(0[xX][0-9a-fA-F]+|\d+)`)
	keycodeRe  = regexp.MustCompile(`^\s*(SDLK_\w+)\s*=\s*('(?:\\.|[^'\\])+'|SDL_SCANCODE_TO_KEYCODE\(\s*(SDL_SCANCODE_\w+)\s*\)|0[xX][0-9a-fA-F]+|\d+)`)
	defineRe   = regexp.MustCompile(`^\s*#\s*define\s+(SDLK_\w+)\s+\(?\s*(0[xX][0-9a-fA-F]+|\d+)[uU]?\s*\)?`)
)

// Parse reads one or more concatenated headers. Scancode references are
// resolved after the whole input has been read, so SDL_scancode.h may come
// before or after SDL_keycode.h.
func Parse(r io.Reader) (*Constants, error) {
	c := &Constants{Scancodes: map[string]int64{}}
	seen := map[string]int{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := scancodeRe.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseInt(m[2], 0, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", lineNo, m[1], err)
			}
			c.Scancodes[m[1]] = v
			continue
		}

		var k Keycode
		if m := keycodeRe.FindStringSubmatch(line); m != nil {
			k = Keycode{Name: m[1], Scancode: m[3], Line: lineNo}
			if k.Scancode == "" {
				v, err := parseValue(m[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %s: %w", lineNo, m[1], err)
				}
				k.Value = v
			}
		} else if m := defineRe.FindStringSubmatch(line); m != nil && m[1] != "SDLK_SCANCODE_MASK" {
			v, err := strconv.ParseInt(m[2], 0, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", lineNo, m[1], err)
			}
			k = Keycode{Name: m[1], Value: v, Line: lineNo}
		} else {
			continue
		}

		if prev, dup := seen[k.Name]; dup {
			return nil, fmt.Errorf("line %d: %s already defined on line %d", lineNo, k.Name, prev)
		}
		seen[k.Name] = lineNo
		c.Keycodes = append(c.Keycodes, k)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for i := range c.Keycodes {
		k := &c.Keycodes[i]
		if k.Scancode == "" {
			continue
		}
		v, ok := c.Scancodes[k.Scancode]
		if !ok {
			return nil, fmt.Errorf("line %d: %s references undefined %s", k.Line, k.Name, k.Scancode)
		}
		k.Value = v | ScancodeMask
	}
	return c, nil
}

// parseValue decodes a decimal, hex or C character literal.
func parseValue(s string) (int64, error) {
	if !strings.HasPrefix(s, "'") {
		return strconv.ParseInt(s, 0, 64)
	}
	body := s[1 : len(s)-1]
	r, _, tail, err := strconv.UnquoteChar(body, '\'')
	if err != nil {
		return 0, fmt.Errorf("character literal %s: %w", s, err)
	}
	if tail != "" {
		return 0, fmt.Errorf("character literal %s: multiple characters", s)
	}
	return int64(r), nil
}

// Lookup returns the keycode with the given SDL name.
func (c *Constants) Lookup(name string) (Keycode, bool) {
	for _, k := range c.Keycodes {
		if k.Name == name {
			return k, true
		}
	}
	return Keycode{}, false
}
