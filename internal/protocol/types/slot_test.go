package types

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/danmuck/blockwire/internal/protocol/nbt"
	"github.com/danmuck/blockwire/internal/protocol/wire"
	"github.com/danmuck/blockwire/internal/testutil/testlog"
)

func TestSlotAbsentRoundTrip(t *testing.T) {
	testlog.Start(t)
	data, err := wire.Marshal[*Slot](Slots, nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(data, []byte{0xFF, 0xFF}) {
		t.Fatalf("empty slot must encode as FF FF, got %x", data)
	}
	r := bytes.NewReader([]byte{0xFF, 0xFF, 0x01, 0x02})
	s, err := Slots.Decode(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s != nil {
		t.Fatalf("expected empty slot, got %+v", s)
	}
	if r.Len() != 2 {
		t.Fatalf("empty slot must consume 2 bytes, %d left", r.Len())
	}
}

func TestSlotPresentRoundTrip(t *testing.T) {
	testlog.Start(t)
	in := &Slot{ID: 1, Count: 1, Damage: 0}
	data, err := wire.Marshal[*Slot](Slots, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("bytes mismatch: got=%x want=%x", data, want)
	}
	out, err := wire.Unmarshal[*Slot](Slots, data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", out, in)
	}
}

func TestSlotWithTagRoundTrip(t *testing.T) {
	testlog.Start(t)
	in := &Slot{
		ID:     276,
		Count:  1,
		Damage: 12,
		Tag: nbt.NewBlob(nbt.Compound{
			"ench": &nbt.List{Elem: nbt.TagCompound, Items: []nbt.Value{
				nbt.Compound{"id": nbt.Short(16), "lvl": nbt.Short(5)},
			}},
		}),
	}
	data, err := wire.Marshal[*Slot](Slots, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if data[5] != byte(nbt.TagCompound) {
		t.Fatalf("tag must start after the 5 fixed bytes, got %#x", data[5])
	}
	out, err := wire.Unmarshal[*Slot](Slots, data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", out, in)
	}
}

func TestSlotLenMatchesEncode(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		slot *Slot
		want int
	}{
		{"absent", nil, 2},
		{"no tag", &Slot{ID: 35, Count: 64, Damage: 14}, 6},
		{"empty tag", &Slot{ID: 1, Count: 1, Tag: nbt.NewBlob(nil)}, 5 + 4},
		{"tag", &Slot{ID: 1, Count: 1, Tag: nbt.NewBlob(nbt.Compound{"Unbreakable": nbt.Byte(1)})}, 5 + 4 + 1 + 2 + 11 + 1},
		{"negative damage", &Slot{ID: 40000, Count: 0, Damage: -5}, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Slots.Encode(&buf, tc.slot); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if buf.Len() != Slots.Len(tc.slot) {
				t.Fatalf("len mismatch: wrote=%d len=%d", buf.Len(), Slots.Len(tc.slot))
			}
			if buf.Len() != tc.want {
				t.Fatalf("unexpected size: got=%d want=%d", buf.Len(), tc.want)
			}
		})
	}
}

func TestSlotLenientTagRecovery(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		tail []byte
	}{
		{"string root", []byte{0x08, 0x00, 0x00}},
		{"unknown tag", []byte{0x7F}},
		{"truncated compound", []byte{0x0A, 0x00, 0x04, 'a'}},
		{"missing tag", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := append([]byte{0x01, 0x14, 0x02, 0xFF, 0xFE}, tc.tail...)
			s, err := Slots.Decode(bytes.NewReader(input))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			want := &Slot{ID: 276, Count: 2, Damage: -2}
			if !reflect.DeepEqual(s, want) {
				t.Fatalf("unexpected slot: got=%+v want=%+v", s, want)
			}
		})
	}
}

func TestSlotStrictTagFailure(t *testing.T) {
	testlog.Start(t)
	strict := SlotCodec{Strict: true}
	_, err := strict.Decode(bytes.NewReader([]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x08, 0x00, 0x00}))
	if !errors.Is(err, nbt.ErrInvalidRoot) {
		t.Fatalf("expected ErrInvalidRoot, got %v", err)
	}
	s, err := strict.Decode(bytes.NewReader([]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00}))
	if err != nil {
		t.Fatalf("absent tag must decode in strict mode: %v", err)
	}
	if s.Tag != nil {
		t.Fatalf("expected no tag, got %+v", s.Tag)
	}
}

func TestSlotFixedFieldStreamFailure(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, io.EOF},
		{"half id", []byte{0x00}, io.ErrUnexpectedEOF},
		{"no count", []byte{0x00, 0x01}, io.EOF},
		{"half damage", []byte{0x00, 0x01, 0x01, 0x00}, io.ErrUnexpectedEOF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Slots.Decode(bytes.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSlotItemIDConversion(t *testing.T) {
	testlog.Start(t)
	err := Slots.Encode(io.Discard, &Slot{ID: 0xFFFF, Count: 1})
	if !errors.Is(err, ErrInvalidItemID) {
		t.Fatalf("expected ErrInvalidItemID, got %v", err)
	}
	data, err := wire.Marshal[*Slot](Slots, &Slot{ID: MaxItemID, Count: 1})
	if err != nil {
		t.Fatalf("marshal max id: %v", err)
	}
	if !bytes.Equal(data[:2], []byte{0xFF, 0xFE}) {
		t.Fatalf("unexpected id bytes: %x", data[:2])
	}
	out, err := wire.Unmarshal[*Slot](Slots, data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != MaxItemID {
		t.Fatalf("expected id %d, got %d", MaxItemID, out.ID)
	}
}

type countingTags struct {
	nbt.BlobCodec
	decodes int
}

func (c *countingTags) Decode(r io.Reader) (*nbt.Blob, error) {
	c.decodes++
	return c.BlobCodec.Decode(r)
}

func TestSlotUsesInjectedTagCodec(t *testing.T) {
	testlog.Start(t)
	tags := &countingTags{}
	codec := SlotCodec{Tags: tags}
	if _, err := codec.Decode(bytes.NewReader([]byte{0xFF, 0xFF})); err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if tags.decodes != 0 {
		t.Fatalf("empty slot must not touch the tag codec")
	}
	if _, err := codec.Decode(bytes.NewReader([]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00})); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tags.decodes != 1 {
		t.Fatalf("expected one tag decode, got %d", tags.decodes)
	}
}

func TestSlotCloneOwnsTag(t *testing.T) {
	testlog.Start(t)
	in := &Slot{ID: 1, Count: 1, Tag: nbt.NewBlob(nbt.Compound{"a": nbt.Int(1)})}
	out, err := in.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	out.Tag.Root["a"] = nbt.Int(2)
	if in.Tag.Root["a"] != nbt.Int(1) {
		t.Fatalf("clone shares tag storage")
	}
	var empty *Slot
	if c, err := empty.Clone(); err != nil || c != nil {
		t.Fatalf("clone of empty slot: got=%v err=%v", c, err)
	}
}
