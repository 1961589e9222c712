package keycode_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/keybind/sdlkey/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestValuesAreInjective(t *testing.T) {
	seen := make(map[int32]keycode.KeyCode, keycode.Len())
	for _, k := range keycode.All() {
		if prev, dup := seen[k.Int32()]; dup {
			t.Fatalf("%s and %s share value %d", prev, k, k.Int32())
		}
		seen[k.Int32()] = k
	}
	assert.Len(t, seen, 236)
}

func TestNamesAreUnique(t *testing.T) {
	names := map[string]bool{}
	sdl := map[string]bool{}
	for _, k := range keycode.All() {
		assert.False(t, names[k.String()], "duplicate name %s", k)
		assert.False(t, sdl[k.SDLName()], "duplicate SDL name %s", k.SDLName())
		names[k.String()] = true
		sdl[k.SDLName()] = true
	}
}

func TestRoundTrip(t *testing.T) {
	for _, k := range keycode.All() {
		got, ok := keycode.FromInt(k.Int64())
		require.True(t, ok, "%s not found by value", k)
		assert.Equal(t, k, got)

		byName, err := keycode.ParseName(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, byName)

		bySDL, err := keycode.ParseName(k.SDLName())
		require.NoError(t, err)
		assert.Equal(t, k, bySDL)
	}
}

func TestProjectionsAgree(t *testing.T) {
	for _, k := range keycode.All() {
		var n keycode.Integer = k
		assert.Equal(t, int64(k.Int32()), n.Int64(), k.String())
		assert.Equal(t, uint64(k.Int32()), n.Uint64(), k.String())
		assert.Equal(t, int(k.Int32()), n.Int(), k.String())
		assert.GreaterOrEqual(t, n.Int64(), int64(0), k.String())
	}
}

func TestUnknownValues(t *testing.T) {
	for _, v := range []int64{-999999, -1, 1, 128, keycode.ScancodeMask, keycode.ScancodeMask | 100, math.MaxInt32 + int64(keycode.A), math.MinInt64} {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			k, ok := keycode.FromInt(v)
			assert.False(t, ok)
			assert.Equal(t, keycode.Unknown, k)

			_, err := keycode.Lookup(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, keycode.ErrUnknownKeyCode)
			var uerr *keycode.UnknownKeyCodeError
			require.True(t, errors.As(err, &uerr))
			assert.Equal(t, v, uerr.Value)
		})
	}
}

func TestUnknownIsMember(t *testing.T) {
	assert.Equal(t, int32(0), keycode.Unknown.Int32())
	k, ok := keycode.FromInt(0)
	assert.True(t, ok)
	assert.Equal(t, keycode.Unknown, k)
	assert.True(t, keycode.Unknown.Valid())
	assert.Equal(t, "Unknown", keycode.Unknown.String())
	assert.Equal(t, keycode.Unknown.Hash(), keycode.KeyCode(0).Hash())
}

func TestPublishedValues(t *testing.T) {
	tests := []struct {
		key  keycode.KeyCode
		want int64
	}{
		{keycode.A, 'a'},
		{keycode.Z, 'z'},
		{keycode.Num0, '0'},
		{keycode.Escape, 27},
		{keycode.Return, '\r'},
		{keycode.Delete, 127},
		{keycode.CapsLock, 0x40000039},
		{keycode.F1, 0x4000003A},
		{keycode.Up, 0x40000052},
		{keycode.LCtrl, 0x400000E0},
		{keycode.Mode, 0x40000101},
		{keycode.Sleep, 0x4000011A},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Int64())
		})
	}
	assert.Equal(t, int64(97), keycode.A.Int64())
}

func TestEscapeProjections(t *testing.T) {
	assert.Equal(t, int64(27), keycode.Escape.Int64())
	assert.Equal(t, uint64(27), keycode.Escape.Uint64())
	assert.Equal(t, 27, keycode.Escape.Int())
}

func TestHash(t *testing.T) {
	seen := map[uint64]keycode.KeyCode{}
	for _, k := range keycode.All() {
		h := k.Hash()
		assert.Equal(t, h, k.Hash())
		assert.Equal(t, h, keycode.KeyCode(k.Int32()).Hash())
		if prev, dup := seen[h]; dup {
			t.Errorf("hash collision between %s and %s", prev, k)
		}
		seen[h] = k
	}
	// FNV-1a 64 of 1b 00 00 00.
	assert.Equal(t, uint64(0xeca04350090d7e1e), keycode.Escape.Hash())
}

func TestClearVariants(t *testing.T) {
	assert.Equal(t, keycode.KpClear, keycode.KpCear)
	assert.NotEqual(t, keycode.KpClear, keycode.KpClearEntry)
	assert.NotEqual(t, keycode.Clear, keycode.ClearAgain)

	k, err := keycode.ParseName("KpCear")
	require.NoError(t, err)
	assert.Equal(t, keycode.KpClear, k)
}

func TestStringUnknownValue(t *testing.T) {
	k := keycode.KeyCode(-5)
	assert.False(t, k.Valid())
	assert.Equal(t, "KeyCode(-5)", k.String())
	assert.Empty(t, k.SDLName())
}

func TestParseNameErrors(t *testing.T) {
	_, err := keycode.ParseName("NotAKey")
	assert.ErrorIs(t, err, keycode.ErrUnknownKeyCode)

	k, err := keycode.ParseName("  sdlk_escape ")
	require.NoError(t, err)
	assert.Equal(t, keycode.Escape, k)
}

func TestTableDigest(t *testing.T) {
	h, err := blake2b.New256(nil)
	require.NoError(t, err)
	for _, k := range keycode.All() {
		fmt.Fprintf(h, "%s=%d\n", k.SDLName(), k.Int64())
	}
	assert.Equal(t, keycode.TableDigest, fmt.Sprintf("%x", h.Sum(nil)))
}

func TestAllReturnsCopy(t *testing.T) {
	all := keycode.All()
	all[0] = keycode.Sleep
	assert.Equal(t, keycode.Unknown, keycode.All()[0])
}
