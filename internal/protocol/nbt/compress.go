package nbt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression is the outer wrapping of a stored blob. Slot tags on the wire
// are never compressed; data files usually are.
type Compression byte

const (
	Uncompressed Compression = iota
	GZip
	ZLib
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "none"
	case GZip:
		return "gzip"
	case ZLib:
		return "zlib"
	default:
		return fmt.Sprintf("compression(%d)", byte(c))
	}
}

// Sniff inspects the first two bytes of a stored blob.
func Sniff(head []byte) Compression {
	if len(head) < 2 {
		return Uncompressed
	}
	if head[0] == 0x1f && head[1] == 0x8b {
		return GZip
	}
	// zlib: CM=8 in the low nibble of CMF and a header that is a multiple of 31.
	if head[0]&0x0f == 0x08 && (uint16(head[0])<<8|uint16(head[1]))%31 == 0 {
		return ZLib
	}
	return Uncompressed
}

// ReadCompressed decodes a blob stored raw, gzip, or zlib compressed.
func (c BlobCodec) ReadCompressed(r io.Reader) (*Blob, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && len(head) == 0 {
		return nil, Uncompressed, err
	}
	kind := Sniff(head)
	var src io.Reader = br
	switch kind {
	case GZip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("nbt: open gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	case ZLib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("nbt: open zlib: %w", err)
		}
		defer zr.Close()
		src = zr
	}
	blob, err := c.Decode(src)
	if err != nil {
		return nil, kind, err
	}
	return blob, kind, nil
}

// WriteCompressed encodes b with the given outer compression.
func (c BlobCodec) WriteCompressed(w io.Writer, b *Blob, kind Compression) error {
	switch kind {
	case Uncompressed:
		return c.Encode(w, b)
	case GZip:
		zw := gzip.NewWriter(w)
		if err := c.Encode(zw, b); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case ZLib:
		zw := zlib.NewWriter(w)
		if err := c.Encode(zw, b); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		return fmt.Errorf("nbt: unsupported compression %s", kind)
	}
}
