package nbt

import (
	"fmt"
	"io"
	"math"

	"github.com/danmuck/blockwire/internal/protocol/wire"
)

// Decode reads one blob from r. A leading TagEnd yields ErrEmptyBlob after
// consuming that single byte.
func (c BlobCodec) Decode(r io.Reader) (*Blob, error) {
	d := &decoder{r: r, limits: c.Limits.withDefaults()}
	root, err := d.tag()
	if err != nil {
		return nil, err
	}
	switch root {
	case TagEnd:
		return nil, ErrEmptyBlob
	case TagCompound:
	default:
		return nil, fmt.Errorf("%w: got %s", ErrInvalidRoot, root)
	}
	name, err := d.string()
	if err != nil {
		return nil, err
	}
	payload, err := d.compound(1)
	if err != nil {
		return nil, err
	}
	return &Blob{Name: name, Root: payload}, nil
}

// Unmarshal decodes exactly one blob from data.
func Unmarshal(data []byte) (*Blob, error) {
	return wire.Unmarshal[*Blob](BlobCodec{}, data)
}

type decoder struct {
	r      io.Reader
	limits Limits
	read   int64
	buf    [8]byte
}

func (d *decoder) reserve(n int64) error {
	if n < 0 || d.read+n > d.limits.MaxBytes {
		return ErrTooLarge
	}
	d.read += n
	return nil
}

func (d *decoder) fill(n int) ([]byte, error) {
	if err := d.reserve(int64(n)); err != nil {
		return nil, err
	}
	b := d.buf[:n]
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) tag() (Tag, error) {
	b, err := d.fill(1)
	if err != nil {
		return 0, err
	}
	t := Tag(b[0])
	if !t.Valid() {
		return 0, &TagError{Tag: t, Where: "tag header"}
	}
	return t, nil
}

func (d *decoder) int8() (int8, error) {
	b, err := d.fill(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (d *decoder) int16() (int16, error) {
	if _, err := d.fill(2); err != nil {
		return 0, err
	}
	return int16(uint16(d.buf[0])<<8 | uint16(d.buf[1])), nil
}

func (d *decoder) uint32() (uint32, error) {
	if _, err := d.fill(4); err != nil {
		return 0, err
	}
	b := d.buf[:4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (d *decoder) uint64() (uint64, error) {
	hi, err := d.uint32()
	if err != nil {
		return 0, err
	}
	lo, err := d.uint32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

func (d *decoder) length(elemSize int64) (int, error) {
	n, err := d.uint32()
	if err != nil {
		return 0, err
	}
	l := int32(n)
	if l < 0 {
		return 0, ErrNegativeLength
	}
	// Checked against the budget before allocating.
	if int64(l)*elemSize > d.limits.MaxBytes-d.read {
		return 0, ErrTooLarge
	}
	return int(l), nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if err := d.reserve(int64(n)); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (d *decoder) string() (string, error) {
	n, err := d.int16()
	if err != nil {
		return "", err
	}
	buf, err := d.bytes(int(uint16(n)))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (d *decoder) payload(t Tag, depth int) (Value, error) {
	switch t {
	case TagByte:
		v, err := d.int8()
		return Byte(v), err
	case TagShort:
		v, err := d.int16()
		return Short(v), err
	case TagInt:
		v, err := d.uint32()
		return Int(int32(v)), err
	case TagLong:
		v, err := d.uint64()
		return Long(int64(v)), err
	case TagFloat:
		v, err := d.uint32()
		return Float(math.Float32frombits(v)), err
	case TagDouble:
		v, err := d.uint64()
		return Double(math.Float64frombits(v)), err
	case TagByteArray:
		n, err := d.length(1)
		if err != nil {
			return nil, err
		}
		raw, err := d.bytes(n)
		if err != nil {
			return nil, err
		}
		out := make(ByteArray, n)
		for i, b := range raw {
			out[i] = int8(b)
		}
		return out, nil
	case TagString:
		s, err := d.string()
		return String(s), err
	case TagList:
		return d.list(depth + 1)
	case TagCompound:
		return d.compound(depth + 1)
	case TagIntArray:
		n, err := d.length(4)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			v, err := d.uint32()
			if err != nil {
				return nil, err
			}
			out[i] = int32(v)
		}
		return out, nil
	case TagLongArray:
		n, err := d.length(8)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			v, err := d.uint64()
			if err != nil {
				return nil, err
			}
			out[i] = int64(v)
		}
		return out, nil
	default:
		return nil, &TagError{Tag: t, Where: "payload"}
	}
}

func (d *decoder) list(depth int) (*List, error) {
	if depth > d.limits.MaxDepth {
		return nil, ErrDepthExceeded
	}
	elem, err := d.tag()
	if err != nil {
		return nil, err
	}
	// Every element payload occupies at least one byte.
	n, err := d.length(1)
	if err != nil {
		return nil, err
	}
	if n > 0 && elem == TagEnd {
		return nil, &TagError{Tag: elem, Where: "non-empty list"}
	}
	l := &List{Elem: elem}
	if n > 0 {
		l.Items = make([]Value, 0, n)
	}
	for i := 0; i < n; i++ {
		item, err := d.payload(elem, depth)
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, item)
	}
	return l, nil
}

func (d *decoder) compound(depth int) (Compound, error) {
	if depth > d.limits.MaxDepth {
		return nil, ErrDepthExceeded
	}
	out := Compound{}
	for {
		t, err := d.tag()
		if err != nil {
			return nil, err
		}
		if t == TagEnd {
			return out, nil
		}
		name, err := d.string()
		if err != nil {
			return nil, err
		}
		v, err := d.payload(t, depth)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
}
