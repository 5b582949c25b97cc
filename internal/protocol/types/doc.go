// Package types owns the leaf value types shared by packet definitions.
//
// Ownership boundary:
// - enumerated game states and their wire tables
// - chat color identifiers
// - inventory slots and the slot codec
//
// In-memory constants are declared in Go order; their wire discriminants
// live only in the enum tables, so reordering a const block never changes
// the bytes on the wire.
package types

import (
	"errors"
	"fmt"

	"github.com/danmuck/blockwire/internal/protocol/enum"
)

var ErrUnknownName = errors.New("types: unknown name")

func marshalName[E comparable, R enum.Integer](t *enum.Table[E, R], v E) ([]byte, error) {
	name, ok := t.Name(v)
	if !ok {
		return nil, &enum.Error{Type: t.TypeName(), Value: v, Err: enum.ErrUnknownValue}
	}
	return []byte(name), nil
}

func unmarshalName[E comparable, R enum.Integer](t *enum.Table[E, R], text []byte, dst *E) error {
	v, ok := t.Parse(string(text))
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownName, t.TypeName(), text)
	}
	*dst = v
	return nil
}
