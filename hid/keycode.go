package hid

import (
	"fmt"

	"github.com/keybind/sdlkey/keycode"
)

// charUsages covers the keys whose SDL key code is the character they type
// on a US layout.
var charUsages = func() map[keycode.KeyCode]Usage {
	m := map[keycode.KeyCode]Usage{
		keycode.Return:       UsageEnter,
		keycode.Escape:       UsageEscape,
		keycode.Backspace:    UsageBackspace,
		keycode.Tab:          UsageTab,
		keycode.Space:        UsageSpace,
		keycode.Minus:        UsageMinus,
		keycode.Equals:       UsageEqual,
		keycode.LeftBracket:  UsageLeftBrace,
		keycode.RightBracket: UsageRightBrace,
		keycode.Backslash:    UsageBackslash,
		keycode.Hash:         UsageNonUSHash,
		keycode.Semicolon:    UsageSemicolon,
		keycode.Quote:        UsageApostrophe,
		keycode.Backquote:    UsageGrave,
		keycode.Comma:        UsageComma,
		keycode.Period:       UsagePeriod,
		keycode.Slash:        UsageSlash,
		keycode.Delete:       UsageDelete,
		keycode.Num0:         Usage0,
	}
	for i := 0; i < 26; i++ {
		m[keycode.A+keycode.KeyCode(i)] = UsageA + Usage(i)
	}
	for i := 0; i < 9; i++ {
		m[keycode.Num1+keycode.KeyCode(i)] = Usage1 + Usage(i)
	}
	return m
}()

var usageChars = func() map[Usage]keycode.KeyCode {
	m := make(map[Usage]keycode.KeyCode, len(charUsages))
	for k, u := range charUsages {
		m[u] = k
	}
	return m
}()

// FromKeyCode returns the HID usage for k. Keys typed only with a modifier
// (Exclaim, Colon, ...) and keys beyond the keyboard page report false.
func FromKeyCode(k keycode.KeyCode) (Usage, bool) {
	if u, ok := charUsages[k]; ok {
		return u, true
	}
	sc, ok := k.Scancode()
	if !ok || sc > uint32(UsageRightGUI) {
		return 0, false
	}
	return Usage(sc), true
}

// ToKeyCode returns the SDL key code produced by usage u under SDL's
// default keymap.
func ToKeyCode(u Usage) (keycode.KeyCode, bool) {
	if k, ok := usageChars[u]; ok {
		return k, true
	}
	return keycode.FromScancode(uint32(u))
}

// UsageName returns the key code name for u, or its hex value when SDL has
// no key code for it.
func UsageName(u Usage) string {
	if k, ok := ToKeyCode(u); ok {
		return k.String()
	}
	return fmt.Sprintf("Usage(0x%02X)", uint8(u))
}

func (u Usage) String() string { return UsageName(u) }
