package hid

import (
	"fmt"

	"github.com/keybind/sdlkey/keycode"
)

// shifted maps US-layout shifted characters to the unshifted key that types
// them.
var shifted = map[byte]keycode.KeyCode{
	'!': keycode.Num1, '@': keycode.Num2, '#': keycode.Num3, '$': keycode.Num4, '%': keycode.Num5,
	'^': keycode.Num6, '&': keycode.Num7, '*': keycode.Num8, '(': keycode.Num9, ')': keycode.Num0,

	'_': keycode.Minus,
	'+': keycode.Equals,
	'{': keycode.LeftBracket,
	'}': keycode.RightBracket,
	'|': keycode.Backslash,
	':': keycode.Semicolon,
	'"': keycode.Quote,
	'~': keycode.Backquote,
	'<': keycode.Comma,
	'>': keycode.Period,
	'?': keycode.Slash,
}

// CharKey returns the key that types c on a US layout and whether Shift
// must be held.
func CharKey(c byte) (k keycode.KeyCode, shift bool, ok bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return keycode.KeyCode(c - 'A' + 'a'), true, true
	case c == '\n':
		return keycode.Return, false, true
	}
	if k, ok := shifted[c]; ok {
		return k, true, true
	}
	k = keycode.KeyCode(c)
	if _, ok := charUsages[k]; ok {
		return k, false, true
	}
	return keycode.Unknown, false, false
}

// PressKeys creates an InputState with the specified keys held.
//
// Example:
//
//	state := PressKeys(keycode.LCtrl, keycode.C) // Ctrl+C
func PressKeys(keys ...keycode.KeyCode) InputState {
	st, _ := StateFromKeys(keys...)
	return st
}

// Release creates an InputState with all keys released.
func Release() InputState {
	return InputState{}
}

// TypeString converts a string into a sequence of InputState press/release pairs.
// Automatically handles shift modifiers for uppercase letters and symbols.
//
// Example:
//
//	states, _ := TypeString("Hi!")
//	// Returns: [Press Shift+H, Release, Press i, Release, Press Shift+1, Release]
func TypeString(s string) ([]InputState, error) {
	states := make([]InputState, 0, 2*len(s))
	for i := 0; i < len(s); i++ {
		k, shift, ok := CharKey(s[i])
		if !ok {
			return nil, fmt.Errorf("character %q at offset %d: %w", s[i], i, keycode.ErrUnknownKeyCode)
		}
		press := PressKeys(k)
		if shift {
			press.Modifiers |= ModLeftShift
		}
		states = append(states, press, Release())
	}
	return states, nil
}
