// Package enum lifts a primitive wire codec into a codec for a closed set
// of named values.
//
// A Table is the wire contract of one enumerated type: an ordered list of
// (value, discriminant, name) entries. Values and discriminants are both
// unique within a table, so the reverse lookup used by Decode is the exact
// inverse of the forward lookup used by Encode.
package enum

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/blockwire/internal/protocol/wire"
)

var (
	ErrInvalidDiscriminant = errors.New("enum: invalid discriminant")
	ErrUnknownValue        = errors.New("enum: value not in table")
)

// Integer is the set of fixed-width discriminant representations.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Entry binds one variant to its wire discriminant and text name.
type Entry[E comparable, R Integer] struct {
	Value E
	Disc  R
	Name  string
}

// Table is an immutable variant/discriminant mapping.
type Table[E comparable, R Integer] struct {
	typeName string
	entries  []Entry[E, R]
	byValue  map[E]int
	byDisc   map[R]int
	byName   map[string]int
}

// NewTable builds a table and panics if any value, discriminant, or
// non-empty name repeats. Tables are package-level vars, so a bad table
// fails at init.
func NewTable[E comparable, R Integer](typeName string, entries ...Entry[E, R]) *Table[E, R] {
	t := &Table[E, R]{
		typeName: typeName,
		entries:  make([]Entry[E, R], len(entries)),
		byValue:  make(map[E]int, len(entries)),
		byDisc:   make(map[R]int, len(entries)),
		byName:   make(map[string]int, len(entries)),
	}
	copy(t.entries, entries)
	for i, e := range t.entries {
		if _, dup := t.byValue[e.Value]; dup {
			panic(fmt.Sprintf("enum: %s: duplicate value %v", typeName, e.Value))
		}
		if _, dup := t.byDisc[e.Disc]; dup {
			panic(fmt.Sprintf("enum: %s: duplicate discriminant %d", typeName, e.Disc))
		}
		if e.Name != "" {
			if _, dup := t.byName[e.Name]; dup {
				panic(fmt.Sprintf("enum: %s: duplicate name %q", typeName, e.Name))
			}
			t.byName[e.Name] = i
		}
		t.byValue[e.Value] = i
		t.byDisc[e.Disc] = i
	}
	return t
}

func (t *Table[E, R]) TypeName() string { return t.typeName }

// Disc returns the discriminant bound to v.
func (t *Table[E, R]) Disc(v E) (R, bool) {
	i, ok := t.byValue[v]
	if !ok {
		var zero R
		return zero, false
	}
	return t.entries[i].Disc, true
}

// Lookup returns the variant bound to discriminant d.
func (t *Table[E, R]) Lookup(d R) (E, bool) {
	i, ok := t.byDisc[d]
	if !ok {
		var zero E
		return zero, false
	}
	return t.entries[i].Value, true
}

func (t *Table[E, R]) Name(v E) (string, bool) {
	i, ok := t.byValue[v]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

func (t *Table[E, R]) Parse(name string) (E, bool) {
	i, ok := t.byName[name]
	if !ok {
		var zero E
		return zero, false
	}
	return t.entries[i].Value, true
}

// Values returns the variants in table order.
func (t *Table[E, R]) Values() []E {
	out := make([]E, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Error reports a value or discriminant that has no table entry.
type Error struct {
	Type  string
	Value any
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s %v", e.Err, e.Type, e.Value)
}

func (e *Error) Unwrap() error { return e.Err }

// Codec encodes table variants through the primitive codec of R.
type Codec[E comparable, R Integer] struct {
	table *Table[E, R]
	repr  wire.Codec[R]
}

var _ wire.Codec[int8] = (*Codec[int8, int8])(nil)

func NewCodec[E comparable, R Integer](table *Table[E, R], repr wire.Codec[R]) *Codec[E, R] {
	return &Codec[E, R]{table: table, repr: repr}
}

func (c *Codec[E, R]) Table() *Table[E, R] { return c.table }

// Len is the primitive width, whichever variant v is.
func (c *Codec[E, R]) Len(v E) int {
	d, _ := c.table.Disc(v)
	return c.repr.Len(d)
}

func (c *Codec[E, R]) Encode(w io.Writer, v E) error {
	d, ok := c.table.Disc(v)
	if !ok {
		return &Error{Type: c.table.typeName, Value: v, Err: ErrUnknownValue}
	}
	return c.repr.Encode(w, d)
}

// Decode reads one discriminant and maps it to its variant. An unmapped
// discriminant consumes exactly the primitive width.
func (c *Codec[E, R]) Decode(r io.Reader) (E, error) {
	var zero E
	d, err := c.repr.Decode(r)
	if err != nil {
		return zero, err
	}
	v, ok := c.table.Lookup(d)
	if !ok {
		return zero, &Error{Type: c.table.typeName, Value: int64(d), Err: ErrInvalidDiscriminant}
	}
	return v, nil
}
