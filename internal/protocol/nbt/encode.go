package nbt

import (
	"fmt"
	"io"
	"math"

	"github.com/danmuck/blockwire/internal/protocol/wire"
)

const (
	DefaultMaxDepth = 512
	DefaultMaxBytes = 2 * 1024 * 1024
)

// Limits constrains decode memory use and recursion.
type Limits struct {
	MaxDepth int
	MaxBytes int64
}

func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, MaxBytes: DefaultMaxBytes}
}

func (l Limits) withDefaults() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	if l.MaxBytes <= 0 {
		l.MaxBytes = DefaultMaxBytes
	}
	return l
}

// BlobCodec is the wire codec for blobs. The zero value uses
// DefaultLimits. A nil blob encodes as the single empty-blob byte.
type BlobCodec struct {
	Limits Limits
}

var _ wire.Codec[*Blob] = BlobCodec{}

func (BlobCodec) Len(b *Blob) int {
	if b == nil {
		return 1
	}
	return 1 + stringLen(b.Name) + payloadLen(b.Root)
}

func (BlobCodec) Encode(w io.Writer, b *Blob) error {
	if b == nil {
		return wire.WriteUint8(w, uint8(TagEnd))
	}
	if err := wire.WriteUint8(w, uint8(TagCompound)); err != nil {
		return err
	}
	if err := writeString(w, b.Name); err != nil {
		return err
	}
	return writePayload(w, b.Root)
}

// Marshal returns the wire form of b.
func Marshal(b *Blob) ([]byte, error) {
	return wire.Marshal[*Blob](BlobCodec{}, b)
}

func stringLen(s string) int { return 2 + len(s) }

func payloadLen(v Value) int {
	switch v := v.(type) {
	case Byte:
		return 1
	case Short:
		return 2
	case Int, Float:
		return 4
	case Long, Double:
		return 8
	case ByteArray:
		return 4 + len(v)
	case String:
		return stringLen(string(v))
	case *List:
		n := 1 + 4
		if v == nil {
			return n
		}
		for _, item := range v.Items {
			n += payloadLen(item)
		}
		return n
	case Compound:
		n := 1
		for name, item := range v {
			n += 1 + stringLen(name) + payloadLen(item)
		}
		return n
	case IntArray:
		return 4 + 4*len(v)
	case LongArray:
		return 4 + 8*len(v)
	default:
		return 0
	}
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return ErrStringTooLong
	}
	if err := wire.WriteUint16(w, uint16(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeLength(w io.Writer, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("nbt: length %d overflows int32", n)
	}
	return wire.WriteInt32(w, int32(n))
}

func writePayload(w io.Writer, v Value) error {
	switch v := v.(type) {
	case Byte:
		return wire.WriteInt8(w, int8(v))
	case Short:
		return wire.WriteInt16(w, int16(v))
	case Int:
		return wire.WriteInt32(w, int32(v))
	case Long:
		return wire.WriteInt64(w, int64(v))
	case Float:
		return wire.WriteFloat32(w, float32(v))
	case Double:
		return wire.WriteFloat64(w, float64(v))
	case ByteArray:
		if err := writeLength(w, len(v)); err != nil {
			return err
		}
		buf := make([]byte, len(v))
		for i, b := range v {
			buf[i] = byte(b)
		}
		_, err := w.Write(buf)
		return err
	case String:
		return writeString(w, string(v))
	case *List:
		return writeList(w, v)
	case Compound:
		for _, name := range v.Keys() {
			item := v[name]
			if item == nil {
				return fmt.Errorf("%w: compound key %q", ErrNilValue, name)
			}
			if err := wire.WriteUint8(w, uint8(item.Tag())); err != nil {
				return err
			}
			if err := writeString(w, name); err != nil {
				return err
			}
			if err := writePayload(w, item); err != nil {
				return err
			}
		}
		return wire.WriteUint8(w, uint8(TagEnd))
	case IntArray:
		if err := writeLength(w, len(v)); err != nil {
			return err
		}
		for _, x := range v {
			if err := wire.WriteInt32(w, x); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := writeLength(w, len(v)); err != nil {
			return err
		}
		for _, x := range v {
			if err := wire.WriteInt64(w, x); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return ErrNilValue
	default:
		return &TagError{Tag: v.Tag(), Where: "payload"}
	}
}

func writeList(w io.Writer, l *List) error {
	if l == nil || len(l.Items) == 0 {
		elem := TagEnd
		if l != nil {
			elem = l.Elem
		}
		if !elem.Valid() {
			return &TagError{Tag: elem, Where: "list element type"}
		}
		if err := wire.WriteUint8(w, uint8(elem)); err != nil {
			return err
		}
		return wire.WriteInt32(w, 0)
	}
	if l.Elem == TagEnd || !l.Elem.Valid() {
		return &TagError{Tag: l.Elem, Where: "list element type"}
	}
	if err := wire.WriteUint8(w, uint8(l.Elem)); err != nil {
		return err
	}
	if err := writeLength(w, len(l.Items)); err != nil {
		return err
	}
	for i, item := range l.Items {
		if item == nil {
			return fmt.Errorf("%w: list index %d", ErrNilValue, i)
		}
		if item.Tag() != l.Elem {
			return fmt.Errorf("%w: index %d is %s, list holds %s", ErrListElemMismatch, i, item.Tag(), l.Elem)
		}
		if err := writePayload(w, item); err != nil {
			return err
		}
	}
	return nil
}
