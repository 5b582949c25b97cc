// Package nbt implements the tagged binary blob format carried inside
// inventory slots and stored in world data files.
//
// All multi-byte numbers are big endian. A blob is one named compound:
//
//	[0x0A][name len u16][name][named entries...][0x00]
//
// A lone 0x00 where a blob is expected marks "no blob".
package nbt

import (
	"errors"
	"fmt"
)

// Tag identifies the payload type of a value.
type Tag byte

const (
	TagEnd Tag = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
	TagIntArray:  "TAG_Int_Array",
	TagLongArray: "TAG_Long_Array",
}

func (t Tag) Valid() bool { return t <= TagLongArray }

func (t Tag) String() string {
	name := "Unknown"
	if t.Valid() {
		name = tagNames[t]
	}
	return fmt.Sprintf("%s (0x%02x)", name, byte(t))
}

var (
	ErrEmptyBlob        = errors.New("nbt: empty blob")
	ErrInvalidRoot      = errors.New("nbt: root tag is not a compound")
	ErrDepthExceeded    = errors.New("nbt: nesting depth exceeded")
	ErrTooLarge         = errors.New("nbt: blob exceeds byte limit")
	ErrNegativeLength   = errors.New("nbt: negative length")
	ErrStringTooLong    = errors.New("nbt: string longer than 65535 bytes")
	ErrListElemMismatch = errors.New("nbt: list item type does not match element type")
	ErrNilValue         = errors.New("nbt: nil value")
)

// TagError reports a tag ID outside the known range, or a tag that is not
// allowed where it appeared.
type TagError struct {
	Tag   Tag
	Where string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("nbt: unexpected tag %s in %s", e.Tag, e.Where)
}
