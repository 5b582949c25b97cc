package wire

import (
	"errors"
	"fmt"
	"io"
)

var ErrLengthMismatch = errors.New("wire: fixed byte run length mismatch")

// FixedBytes returns a codec for raw byte runs of exactly n bytes.
func FixedBytes(n int) Codec[[]byte] {
	if n < 0 {
		panic(fmt.Sprintf("wire: negative fixed byte length %d", n))
	}
	return fixedBytes(n)
}

type fixedBytes int

func (c fixedBytes) Len([]byte) int { return int(c) }

func (c fixedBytes) Encode(w io.Writer, v []byte) error {
	if len(v) != int(c) {
		return fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, len(v), int(c))
	}
	if len(v) == 0 {
		return nil
	}
	_, err := w.Write(v)
	return err
}

func (c fixedBytes) Decode(r io.Reader) ([]byte, error) {
	buf := make([]byte, int(c))
	if len(buf) == 0 {
		return buf, nil
	}
	if err := readN(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
