package keycode

// IsScancode reports whether k is derived from a scancode rather than a
// character.
func (k KeyCode) IsScancode() bool {
	return k&ScancodeMask != 0
}

// Scancode returns the SDL scancode carried by a scancode-derived key code.
// Character key codes report false.
func (k KeyCode) Scancode() (uint32, bool) {
	if !k.IsScancode() {
		return 0, false
	}
	return uint32(k &^ ScancodeMask), true
}

// FromScancode applies SDL_SCANCODE_TO_KEYCODE and looks up the result.
// Scancodes whose keys produce a character (letters, digits, punctuation)
// have no masked key code and report false.
func FromScancode(sc uint32) (KeyCode, bool) {
	if sc >= ScancodeMask {
		return Unknown, false
	}
	return FromInt(int64(sc) | ScancodeMask)
}

// IsModifier reports whether k is one of the shift, control, alt, GUI or
// mode keys.
func (k KeyCode) IsModifier() bool {
	switch k {
	case LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui, Mode:
		return true
	}
	return false
}

// IsKeypad reports whether k belongs to the numeric keypad.
func (k KeyCode) IsKeypad() bool {
	switch {
	case k >= KpDivide && k <= KpPeriod:
		return true
	case k == KpEquals, k == KpComma, k == KpEqualsAS400:
		return true
	case k >= Kp00 && k <= KpHexadecimal:
		return k != ThousandsSeparator && k != DecimalSeparator &&
			k != CurrencyUnit && k != CurrencySubUnit
	}
	return false
}

// IsFunction reports whether k is one of F1 through F24.
func (k KeyCode) IsFunction() bool {
	return (k >= F1 && k <= F12) || (k >= F13 && k <= F24)
}
