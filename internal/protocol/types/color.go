package types

import (
	"fmt"

	"github.com/danmuck/blockwire/internal/protocol/enum"
)

// Color is a chat text color. It travels as its text identifier inside
// structured chat components; the discriminant is the legacy formatting
// code and never appears as a binary field.
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorTable = enum.NewTable("color",
	enum.Entry[Color, uint8]{Value: Black, Disc: 0x0, Name: "black"},
	enum.Entry[Color, uint8]{Value: DarkBlue, Disc: 0x1, Name: "dark_blue"},
	enum.Entry[Color, uint8]{Value: DarkGreen, Disc: 0x2, Name: "dark_green"},
	enum.Entry[Color, uint8]{Value: DarkAqua, Disc: 0x3, Name: "dark_aqua"},
	enum.Entry[Color, uint8]{Value: DarkRed, Disc: 0x4, Name: "dark_red"},
	enum.Entry[Color, uint8]{Value: DarkPurple, Disc: 0x5, Name: "dark_purple"},
	enum.Entry[Color, uint8]{Value: Gold, Disc: 0x6, Name: "gold"},
	enum.Entry[Color, uint8]{Value: Gray, Disc: 0x7, Name: "gray"},
	enum.Entry[Color, uint8]{Value: DarkGray, Disc: 0x8, Name: "dark_gray"},
	enum.Entry[Color, uint8]{Value: Blue, Disc: 0x9, Name: "blue"},
	enum.Entry[Color, uint8]{Value: Green, Disc: 0xa, Name: "green"},
	enum.Entry[Color, uint8]{Value: Aqua, Disc: 0xb, Name: "aqua"},
	enum.Entry[Color, uint8]{Value: Red, Disc: 0xc, Name: "red"},
	enum.Entry[Color, uint8]{Value: LightPurple, Disc: 0xd, Name: "light_purple"},
	enum.Entry[Color, uint8]{Value: Yellow, Disc: 0xe, Name: "yellow"},
	enum.Entry[Color, uint8]{Value: White, Disc: 0xf, Name: "white"},
)

const formatCodes = "0123456789abcdef"

// Colors lists every color in discriminant order.
func Colors() []Color { return colorTable.Values() }

func (c Color) Discriminant() (uint8, bool) { return colorTable.Disc(c) }

func (c Color) String() string {
	if name, ok := colorTable.Name(c); ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Code returns the formatting code character, or 0 for an unknown color.
func (c Color) Code() rune {
	d, ok := colorTable.Disc(c)
	if !ok {
		return 0
	}
	return rune(formatCodes[d])
}

func ColorFromCode(r rune) (Color, bool) {
	for i, code := range formatCodes {
		if code == r {
			return colorTable.Lookup(uint8(i))
		}
	}
	return 0, false
}

// ParseColor maps a text identifier back to its color. It is exact: no
// case folding and no aliases.
func ParseColor(s string) (Color, bool) { return colorTable.Parse(s) }

func (c Color) MarshalText() ([]byte, error) { return marshalName(colorTable, c) }

func (c *Color) UnmarshalText(text []byte) error {
	return unmarshalName(colorTable, text, c)
}
