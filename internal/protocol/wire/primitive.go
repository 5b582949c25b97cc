package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// Primitive codec values. Every bit pattern decodes; only stream errors fail.
var (
	Int8    Codec[int8]    = int8Codec{}
	Uint8   Codec[uint8]   = uint8Codec{}
	Int16   Codec[int16]   = int16Codec{}
	Uint16  Codec[uint16]  = uint16Codec{}
	Int32   Codec[int32]   = int32Codec{}
	Uint32  Codec[uint32]  = uint32Codec{}
	Int64   Codec[int64]   = int64Codec{}
	Uint64  Codec[uint64]  = uint64Codec{}
	Float32 Codec[float32] = float32Codec{}
	Float64 Codec[float64] = float64Codec{}
)

func readN(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readN(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readN(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func ReadInt16(r io.Reader) (int16, error) {
	v, err := ReadUint16(r)
	return int16(v), err
}

func WriteInt16(w io.Writer, v int16) error {
	return WriteUint16(w, uint16(v))
}

func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readN(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func ReadInt32(r io.Reader) (int32, error) {
	v, err := ReadUint32(r)
	return int32(v), err
}

func WriteInt32(w io.Writer, v int32) error {
	return WriteUint32(w, uint32(v))
}

func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := readN(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func ReadInt64(r io.Reader) (int64, error) {
	v, err := ReadUint64(r)
	return int64(v), err
}

func WriteInt64(w io.Writer, v int64) error {
	return WriteUint64(w, uint64(v))
}

func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadUint32(r)
	return math.Float32frombits(v), err
}

func WriteFloat32(w io.Writer, v float32) error {
	return WriteUint32(w, math.Float32bits(v))
}

func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadUint64(r)
	return math.Float64frombits(v), err
}

func WriteFloat64(w io.Writer, v float64) error {
	return WriteUint64(w, math.Float64bits(v))
}

type int8Codec struct{}

func (int8Codec) Len(int8) int { return 1 }
func (int8Codec) Encode(w io.Writer, v int8) error { return WriteInt8(w, v) }
func (int8Codec) Decode(r io.Reader) (int8, error) { return ReadInt8(r) }

type uint8Codec struct{}

func (uint8Codec) Len(uint8) int { return 1 }
func (uint8Codec) Encode(w io.Writer, v uint8) error { return WriteUint8(w, v) }
func (uint8Codec) Decode(r io.Reader) (uint8, error) { return ReadUint8(r) }

type int16Codec struct{}

func (int16Codec) Len(int16) int { return 2 }
func (int16Codec) Encode(w io.Writer, v int16) error { return WriteInt16(w, v) }
func (int16Codec) Decode(r io.Reader) (int16, error) { return ReadInt16(r) }

type uint16Codec struct{}

func (uint16Codec) Len(uint16) int { return 2 }
func (uint16Codec) Encode(w io.Writer, v uint16) error { return WriteUint16(w, v) }
func (uint16Codec) Decode(r io.Reader) (uint16, error) { return ReadUint16(r) }

type int32Codec struct{}

func (int32Codec) Len(int32) int { return 4 }
func (int32Codec) Encode(w io.Writer, v int32) error { return WriteInt32(w, v) }
func (int32Codec) Decode(r io.Reader) (int32, error) { return ReadInt32(r) }

type uint32Codec struct{}

func (uint32Codec) Len(uint32) int { return 4 }
func (uint32Codec) Encode(w io.Writer, v uint32) error { return WriteUint32(w, v) }
func (uint32Codec) Decode(r io.Reader) (uint32, error) { return ReadUint32(r) }

type int64Codec struct{}

func (int64Codec) Len(int64) int { return 8 }
func (int64Codec) Encode(w io.Writer, v int64) error { return WriteInt64(w, v) }
func (int64Codec) Decode(r io.Reader) (int64, error) { return ReadInt64(r) }

type uint64Codec struct{}

func (uint64Codec) Len(uint64) int { return 8 }
func (uint64Codec) Encode(w io.Writer, v uint64) error { return WriteUint64(w, v) }
func (uint64Codec) Decode(r io.Reader) (uint64, error) { return ReadUint64(r) }

type float32Codec struct{}

func (float32Codec) Len(float32) int { return 4 }
func (float32Codec) Encode(w io.Writer, v float32) error { return WriteFloat32(w, v) }
func (float32Codec) Decode(r io.Reader) (float32, error) { return ReadFloat32(r) }

type float64Codec struct{}

func (float64Codec) Len(float64) int { return 8 }
func (float64Codec) Encode(w io.Writer, v float64) error { return WriteFloat64(w, v) }
func (float64Codec) Decode(r io.Reader) (float64, error) { return ReadFloat64(r) }
