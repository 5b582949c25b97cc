// Package wire owns the leaf codecs of the protocol.
//
// Ownership boundary:
// - the Codec contract every value codec satisfies
// - big-endian fixed-width integer and float primitives
// - byte-slice helpers over any Codec
package wire

import (
	"bytes"
	"errors"
	"io"
)

var ErrTrailingBytes = errors.New("wire: trailing bytes after value")

// Codec converts values of type T to and from their wire form.
//
// Len reports exactly how many bytes Encode writes for v. Decode consumes
// only the bytes of one value from r.
type Codec[T any] interface {
	Len(v T) int
	Encode(w io.Writer, v T) error
	Decode(r io.Reader) (T, error)
}

// Marshal encodes v into a freshly allocated slice of exactly c.Len(v) bytes.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	return AppendTo(make([]byte, 0, c.Len(v)), c, v)
}

// AppendTo appends the wire form of v to dst.
func AppendTo[T any](dst []byte, c Codec[T], v T) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if err := c.Encode(buf, v); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one value from data.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	r := bytes.NewReader(data)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Len() != 0 {
		var zero T
		return zero, ErrTrailingBytes
	}
	return v, nil
}
