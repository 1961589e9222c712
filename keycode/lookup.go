package keycode

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKeyCode is returned when a raw value or name has no matching key code.
var ErrUnknownKeyCode = errors.New("unknown key code")

// UnknownKeyCodeError reports a raw integer that is not a known SDL key code.
type UnknownKeyCodeError struct {
	Value int64
}

func (e *UnknownKeyCodeError) Error() string {
	return fmt.Sprintf("unknown key code %d (0x%x)", e.Value, e.Value)
}

func (e *UnknownKeyCodeError) Unwrap() error { return ErrUnknownKeyCode }

// FromInt maps a raw integer, typically taken from an SDL keyboard event,
// back to its KeyCode. The second result is false when v is not a known
// constant; the returned KeyCode is then Unknown and must not be used.
func FromInt(v int64) (KeyCode, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return Unknown, false
	}
	k := KeyCode(v)
	if _, ok := byValue[k]; !ok {
		return Unknown, false
	}
	return k, true
}

// Lookup is FromInt with absence reported as an *UnknownKeyCodeError.
func Lookup(v int64) (KeyCode, error) {
	k, ok := FromInt(v)
	if !ok {
		return Unknown, &UnknownKeyCodeError{Value: v}
	}
	return k, nil
}

var byName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, 2*len(table))
	for _, e := range table {
		m[strings.ToLower(e.name)] = e.code
		m[strings.ToLower(e.sdlName)] = e.code
	}
	m["kpcear"] = KpClear
	return m
}()

// ParseName resolves a Go name ("Escape") or SDL constant name
// ("SDLK_ESCAPE"), ignoring case.
func ParseName(s string) (KeyCode, error) {
	if k, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return Unknown, fmt.Errorf("key %q: %w", s, ErrUnknownKeyCode)
}
