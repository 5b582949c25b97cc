package types

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/blockwire/internal/protocol/nbt"
	"github.com/danmuck/blockwire/internal/protocol/wire"
)

const (
	emptySlotID int16 = -1
	// MaxItemID is the largest encodable item id; 65535 aliases the
	// empty-slot sentinel on the wire.
	MaxItemID uint16 = math.MaxUint16 - 1
)

var ErrInvalidItemID = errors.New("types: item id collides with empty slot sentinel")

// Slot is one inventory item stack. A nil *Slot is an empty slot.
type Slot struct {
	ID     uint16
	Count  uint8
	Damage int16
	Tag    *nbt.Blob
}

// ItemIDToWire converts an item id to its signed wire form.
func ItemIDToWire(id uint16) (int16, error) {
	if id > MaxItemID {
		return 0, fmt.Errorf("%w: %d", ErrInvalidItemID, id)
	}
	return int16(id), nil
}

// ItemIDFromWire converts a non-sentinel wire id back to the item domain.
func ItemIDFromWire(v int16) uint16 { return uint16(v) }

// SlotCodec is the wire codec for *Slot.
//
// Tags defaults to nbt.BlobCodec{}. By default a tag that fails to decode
// is dropped and the slot keeps its other fields; Strict reports the tag
// error instead.
type SlotCodec struct {
	Tags   wire.Codec[*nbt.Blob]
	Strict bool
}

// Slots is the default lenient slot codec.
var Slots = SlotCodec{}

var _ wire.Codec[*Slot] = SlotCodec{}

func (c SlotCodec) tags() wire.Codec[*nbt.Blob] {
	if c.Tags == nil {
		return nbt.BlobCodec{}
	}
	return c.Tags
}

func (c SlotCodec) Len(s *Slot) int {
	if s == nil {
		return 2
	}
	n := 2 + 1 + 2
	if s.Tag == nil {
		return n + 1
	}
	return n + c.tags().Len(s.Tag)
}

func (c SlotCodec) Encode(w io.Writer, s *Slot) error {
	if s == nil {
		return wire.WriteInt16(w, emptySlotID)
	}
	id, err := ItemIDToWire(s.ID)
	if err != nil {
		return err
	}
	if err := wire.WriteInt16(w, id); err != nil {
		return err
	}
	if err := wire.WriteUint8(w, s.Count); err != nil {
		return err
	}
	if err := wire.WriteInt16(w, s.Damage); err != nil {
		return err
	}
	if s.Tag == nil {
		return wire.WriteUint8(w, uint8(nbt.TagEnd))
	}
	return c.tags().Encode(w, s.Tag)
}

// Decode reads the leading id first; the empty-slot sentinel ends the
// value without reading further.
func (c SlotCodec) Decode(r io.Reader) (*Slot, error) {
	raw, err := wire.ReadInt16(r)
	if err != nil {
		return nil, err
	}
	if raw == emptySlotID {
		return nil, nil
	}
	s := &Slot{ID: ItemIDFromWire(raw)}
	if s.Count, err = wire.ReadUint8(r); err != nil {
		return nil, fmt.Errorf("types: slot count: %w", err)
	}
	if s.Damage, err = wire.ReadInt16(r); err != nil {
		return nil, fmt.Errorf("types: slot damage: %w", err)
	}
	tag, err := c.tags().Decode(r)
	switch {
	case err == nil:
		s.Tag = tag
	case c.Strict && !errors.Is(err, nbt.ErrEmptyBlob):
		return nil, fmt.Errorf("types: slot tag: %w", err)
	case !errors.Is(err, nbt.ErrEmptyBlob):
		log.Debug().Err(err).Uint16("item_id", s.ID).Msg("slot tag dropped")
	}
	return s, nil
}

// Clone returns a deep copy of s, including its tag through a wire round
// trip, so the copy never shares tag storage with s.
func (s *Slot) Clone() (*Slot, error) {
	if s == nil {
		return nil, nil
	}
	out := *s
	if s.Tag == nil {
		return &out, nil
	}
	data, err := nbt.Marshal(s.Tag)
	if err != nil {
		return nil, err
	}
	if out.Tag, err = nbt.Unmarshal(data); err != nil {
		return nil, err
	}
	return &out, nil
}
