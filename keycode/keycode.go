// Package keycode provides a typed view over the SDL2 key code constants.
//
// Every KeyCode constant carries exactly the value SDL assigns to the
// matching SDLK_* constant. Key codes of printable keys are the unshifted
// character (A is 'a'); all other keys carry their scancode with
// ScancodeMask set. The table lives in keycode_table.go, which is generated
// from the SDL headers by "sdlkey gen".
package keycode

//go:generate go run ../cmd/sdlkey gen --out keycode_table.go

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// KeyCode identifies a keyboard key by its nominal (unshifted) character or
// function, mirroring SDL_Keycode.
type KeyCode int32

// ScancodeMask is set on key codes derived from a scancode (SDLK_SCANCODE_MASK).
const ScancodeMask = 1 << 30

// KpCear is the historical spelling of KpClear.
//
// Deprecated: use KpClear.
const KpCear = KpClear

type entry struct {
	code    KeyCode
	name    string
	sdlName string
}

var byValue = func() map[KeyCode]int {
	m := make(map[KeyCode]int, len(table))
	for i, e := range table {
		if _, dup := m[e.code]; dup {
			panic("keycode: duplicate value for " + e.name)
		}
		m[e.code] = i
	}
	return m
}()

// Integer is implemented by values that project losslessly onto the common
// integer widths.
type Integer interface {
	Int64() int64
	Uint64() uint64
	Int() int
}

var _ Integer = KeyCode(0)

// Int32 returns the raw SDL_Keycode value.
func (k KeyCode) Int32() int32 { return int32(k) }

// Int64 returns the key code widened to int64.
func (k KeyCode) Int64() int64 { return int64(k) }

// Uint64 returns the key code widened to uint64. SDL key codes are never
// negative, so the conversion is exact for every member.
func (k KeyCode) Uint64() uint64 { return uint64(uint32(k)) }

// Int returns the key code as a platform int.
func (k KeyCode) Int() int { return int(k) }

// Hash returns a 64-bit FNV-1a hash of the little-endian int32 value. It
// depends only on the value, so it is stable across processes.
func (k KeyCode) Hash() uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(k))
	h := fnv.New64a()
	_, _ = h.Write(b[:])
	return h.Sum64()
}

// Valid reports whether k is one of the known SDL key codes.
func (k KeyCode) Valid() bool {
	_, ok := byValue[k]
	return ok
}

// String returns the Go name of the key code, or "KeyCode(n)" when k is not
// a known constant.
func (k KeyCode) String() string {
	if i, ok := byValue[k]; ok {
		return table[i].name
	}
	return "KeyCode(" + strconv.FormatInt(int64(k), 10) + ")"
}

// SDLName returns the SDL constant name (e.g. "SDLK_ESCAPE"), or "" when k
// is not a known constant.
func (k KeyCode) SDLName() string {
	if i, ok := byValue[k]; ok {
		return table[i].sdlName
	}
	return ""
}

// All returns every known key code in table order.
func All() []KeyCode {
	out := make([]KeyCode, len(table))
	for i, e := range table {
		out[i] = e.code
	}
	return out
}

// Len returns the number of known key codes.
func Len() int { return len(table) }
