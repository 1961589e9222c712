// Package hid bridges SDL key codes and USB HID keyboard usage IDs.
//
// SDL2 scancodes are defined as HID usage IDs on the Keyboard/Keypad page
// (0x07), so every scancode-derived key code maps onto a usage directly.
// Character key codes are translated through the US layout SDL uses as its
// default keymap.
package hid

// Usage is a HID usage ID on the Keyboard/Keypad usage page.
type Usage uint8

// Modifier key bitmasks, in report byte 0.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// Keyboard/Keypad page usages for keys whose SDL key code is a character.
const (
	UsageA Usage = 0x04
	UsageZ Usage = 0x1D

	Usage1 Usage = 0x1E
	Usage0 Usage = 0x27

	UsageEnter      Usage = 0x28
	UsageEscape     Usage = 0x29
	UsageBackspace  Usage = 0x2A
	UsageTab        Usage = 0x2B
	UsageSpace      Usage = 0x2C
	UsageMinus      Usage = 0x2D // - and _
	UsageEqual      Usage = 0x2E // = and +
	UsageLeftBrace  Usage = 0x2F // [ and {
	UsageRightBrace Usage = 0x30 // ] and }
	UsageBackslash  Usage = 0x31 // \ and |
	UsageNonUSHash  Usage = 0x32 // Non-US # and ~
	UsageSemicolon  Usage = 0x33 // ; and :
	UsageApostrophe Usage = 0x34 // ' and "
	UsageGrave      Usage = 0x35 // ` and ~
	UsageComma      Usage = 0x36 // , and <
	UsagePeriod     Usage = 0x37 // . and >
	UsageSlash      Usage = 0x38 // / and ?
	UsageCapsLock   Usage = 0x39
	UsageDelete     Usage = 0x4C

	UsageNonUSBackslash Usage = 0x64 // Non-US \ and |, no SDL key code

	UsageLeftCtrl   Usage = 0xE0
	UsageLeftShift  Usage = 0xE1
	UsageLeftAlt    Usage = 0xE2
	UsageLeftGUI    Usage = 0xE3
	UsageRightCtrl  Usage = 0xE4
	UsageRightShift Usage = 0xE5
	UsageRightAlt   Usage = 0xE6
	UsageRightGUI   Usage = 0xE7
)

// modifierBit returns the report byte 0 bit for a modifier usage.
func modifierBit(u Usage) (uint8, bool) {
	if u < UsageLeftCtrl || u > UsageRightGUI {
		return 0, false
	}
	return 1 << (u - UsageLeftCtrl), true
}
