package hid

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/keybind/sdlkey/keycode"
)

// ErrTooManyKeys is returned by MarshalBinary when more keys are held than the
// one-byte count in the wire format can describe.
var ErrTooManyKeys = errors.New("too many keys held")

// InputState represents the keyboard state used to build a report.
// Internally uses a 256-bit bitmap for N-key rollover support.
type InputState struct {
	Modifiers uint8     // bit 0-7: LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui
	KeyBitmap [32]uint8 // 256 bits for HID usage codes 0x00-0xFF
}

// StateFromKeys builds an InputState with the given keys held. Modifier keys
// set their bit in Modifiers; keys without a HID usage are returned as
// skipped.
func StateFromKeys(keys ...keycode.KeyCode) (st InputState, skipped []keycode.KeyCode) {
	for _, k := range keys {
		u, ok := FromKeyCode(k)
		if !ok {
			skipped = append(skipped, k)
			continue
		}
		if bit, ok := modifierBit(u); ok {
			st.Modifiers |= bit
			continue
		}
		st.setUsage(u)
	}
	return st, skipped
}

// StateFromSet snapshots the keys held in s.
func StateFromSet(s *keycode.Set) (InputState, []keycode.KeyCode) {
	return StateFromKeys(s.Pressed()...)
}

func (st *InputState) setUsage(u Usage) {
	st.KeyBitmap[u/8] |= 1 << (u % 8)
}

func (st *InputState) usages() []Usage {
	var out []Usage
	for i := 0; i < 256; i++ {
		if st.KeyBitmap[i/8]&(1<<uint(i%8)) != 0 {
			out = append(out, Usage(i))
		}
	}
	return out
}

// PressedKeyCodes returns the SDL key codes held in st, modifiers included,
// sorted by value. Usages without an SDL key code are omitted.
func (st InputState) PressedKeyCodes() []keycode.KeyCode {
	var out []keycode.KeyCode
	for i := 0; i < 8; i++ {
		if st.Modifiers&(1<<uint(i)) == 0 {
			continue
		}
		if k, ok := ToKeyCode(UsageLeftCtrl + Usage(i)); ok {
			out = append(out, k)
		}
	}
	for _, u := range st.usages() {
		if k, ok := ToKeyCode(u); ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// BuildReport encodes an InputState into the 34-byte HID keyboard report.
//
// Report layout (34 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-33: Key bitmap (256 bits, 32 bytes)
func (st InputState) BuildReport() []byte {
	b := make([]byte, 34)
	b[0] = st.Modifiers
	copy(b[2:34], st.KeyBitmap[:])
	return b
}

// MarshalBinary encodes InputState to variable-length wire format.
//
// Wire format:
//
//	Byte 0: Modifiers
//	Byte 1: Key count
//	Bytes 2+: HID usage codes of pressed keys
func (st *InputState) MarshalBinary() ([]byte, error) {
	keys := st.usages()
	if len(keys) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d keys held, wire format carries at most %d", ErrTooManyKeys, len(keys), math.MaxUint8)
	}
	b := make([]byte, 2+len(keys))
	b[0] = st.Modifiers
	b[1] = uint8(len(keys))
	for i, u := range keys {
		b[2+i] = uint8(u)
	}
	return b, nil
}

// UnmarshalBinary decodes the wire format written by MarshalBinary.
func (st *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}
	keyCount := int(data[1])
	if len(data) < 2+keyCount {
		return io.ErrUnexpectedEOF
	}

	st.Modifiers = data[0]
	st.KeyBitmap = [32]uint8{}
	for _, u := range data[2 : 2+keyCount] {
		st.setUsage(Usage(u))
	}
	return nil
}
