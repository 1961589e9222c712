package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/keybind/sdlkey/internal/codegen/header"
	"github.com/keybind/sdlkey/keycode"
	"golang.org/x/crypto/blake2b"
)

// Digest fingerprints the (SDL name, value) pairs in order. The generated
// table embeds it as keycode.TableDigest.
func Digest(entries []Entry) string {
	h, _ := blake2b.New256(nil)
	for _, e := range entries {
		fmt.Fprintf(h, "%s=%d\n", e.SDLName, e.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MismatchKind classifies a difference between the compiled table and a header.
type MismatchKind string

const (
	// Missing: the compiled table has a constant the header no longer defines.
	Missing MismatchKind = "missing"
	// Changed: the header assigns a different value.
	Changed MismatchKind = "changed"
	// Added: the header defines a constant the compiled table lacks.
	Added MismatchKind = "added"
)

// Mismatch is one difference found by Verify.
type Mismatch struct {
	Kind    MismatchKind
	SDLName string
	Want    int64 // header value, zero for Missing
	Got     int64 // compiled value, zero for Added
}

func (m Mismatch) String() string {
	switch m.Kind {
	case Missing:
		return fmt.Sprintf("%s: %s (compiled %d) not in header", m.Kind, m.SDLName, m.Got)
	case Added:
		return fmt.Sprintf("%s: %s = %d not in compiled table", m.Kind, m.SDLName, m.Want)
	default:
		return fmt.Sprintf("%s: %s header %d, compiled %d", m.Kind, m.SDLName, m.Want, m.Got)
	}
}

// Verify compares the compiled keycode table with parsed header constants.
// An empty result means the table is in sync.
func Verify(c *header.Constants) []Mismatch {
	var out []Mismatch
	compiled := map[string]bool{}
	for _, k := range keycode.All() {
		compiled[k.SDLName()] = true
		hk, ok := c.Lookup(k.SDLName())
		switch {
		case !ok:
			out = append(out, Mismatch{Kind: Missing, SDLName: k.SDLName(), Got: k.Int64()})
		case hk.Value != k.Int64():
			out = append(out, Mismatch{Kind: Changed, SDLName: k.SDLName(), Want: hk.Value, Got: k.Int64()})
		}
	}
	for _, hk := range c.Keycodes {
		if !compiled[hk.Name] {
			out = append(out, Mismatch{Kind: Added, SDLName: hk.Name, Want: hk.Value})
		}
	}
	return out
}
