package keycode

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes k as its Go name. Unknown values are rejected so that
// they never round-trip into a different key.
func (k KeyCode) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &UnknownKeyCodeError{Value: int64(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts a Go name, an SDL constant name or an integer value
// in any base strconv.ParseInt understands with base 0.
func (k *KeyCode) UnmarshalText(text []byte) error {
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k KeyCode) MarshalYAML() (any, error) {
	b, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both scalar names and integer
// values are accepted.
func (k *KeyCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("key code: expected scalar, got yaml kind %d at line %d", node.Kind, node.Line)
	}
	return k.UnmarshalText([]byte(node.Value))
}

func parse(s string) (KeyCode, error) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return Lookup(n)
	}
	return ParseName(s)
}
