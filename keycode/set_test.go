package keycode_test

import (
	"sync"
	"testing"

	"github.com/keybind/sdlkey/keycode"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s keycode.Set
	assert.False(t, s.IsPressed(keycode.A))
	assert.False(t, s.Release(keycode.A))

	assert.True(t, s.Press(keycode.LShift))
	assert.True(t, s.Press(keycode.A))
	assert.False(t, s.Press(keycode.A), "key repeat is not a new press")
	assert.True(t, s.Press(keycode.Unknown))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []keycode.KeyCode{keycode.Unknown, keycode.A, keycode.LShift}, s.Pressed())

	assert.True(t, s.Release(keycode.A))
	assert.False(t, s.IsPressed(keycode.A))

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Pressed())
}

func TestSetConcurrent(t *testing.T) {
	var s keycode.Set
	keys := keycode.All()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, k := range keys {
				s.Press(k)
				_ = s.IsPressed(k)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(keys), s.Len())
}

func TestScancode(t *testing.T) {
	sc, ok := keycode.CapsLock.Scancode()
	assert.True(t, ok)
	assert.Equal(t, uint32(57), sc)

	_, ok = keycode.A.Scancode()
	assert.False(t, ok)
	assert.False(t, keycode.A.IsScancode())

	k, ok := keycode.FromScancode(82)
	assert.True(t, ok)
	assert.Equal(t, keycode.Up, k)

	_, ok = keycode.FromScancode(4) // SDL_SCANCODE_A maps to a character key code
	assert.False(t, ok)
	_, ok = keycode.FromScancode(keycode.ScancodeMask)
	assert.False(t, ok)
}

func TestClassification(t *testing.T) {
	assert.True(t, keycode.RGui.IsModifier())
	assert.True(t, keycode.Mode.IsModifier())
	assert.False(t, keycode.A.IsModifier())

	assert.True(t, keycode.Kp5.IsKeypad())
	assert.True(t, keycode.KpHexadecimal.IsKeypad())
	assert.True(t, keycode.KpEqualsAS400.IsKeypad())
	assert.False(t, keycode.CurrencyUnit.IsKeypad())
	assert.False(t, keycode.Num5.IsKeypad())

	assert.True(t, keycode.F12.IsFunction())
	assert.True(t, keycode.F24.IsFunction())
	assert.False(t, keycode.PrintScreen.IsFunction())

	var fn int
	for _, k := range keycode.All() {
		if k.IsFunction() {
			fn++
		}
	}
	assert.Equal(t, 24, fn)
}
