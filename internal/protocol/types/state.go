package types

import (
	"fmt"

	"github.com/danmuck/blockwire/internal/protocol/enum"
	"github.com/danmuck/blockwire/internal/protocol/wire"
)

// Dimension is the world a player is in. Wire: signed byte.
type Dimension uint8

const (
	Overworld Dimension = iota
	Nether
	End
)

var dimensionTable = enum.NewTable("dimension",
	enum.Entry[Dimension, int8]{Value: Nether, Disc: -1, Name: "nether"},
	enum.Entry[Dimension, int8]{Value: Overworld, Disc: 0, Name: "overworld"},
	enum.Entry[Dimension, int8]{Value: End, Disc: 1, Name: "end"},
)

// Dimensions is the wire codec for Dimension.
var Dimensions = enum.NewCodec(dimensionTable, wire.Int8)

func (d Dimension) Discriminant() (int8, bool) { return dimensionTable.Disc(d) }

func (d Dimension) String() string {
	if name, ok := dimensionTable.Name(d); ok {
		return name
	}
	return fmt.Sprintf("dimension(%d)", uint8(d))
}

func (d Dimension) MarshalText() ([]byte, error) { return marshalName(dimensionTable, d) }

func (d *Dimension) UnmarshalText(text []byte) error {
	return unmarshalName(dimensionTable, text, d)
}

func ParseDimension(s string) (Dimension, bool) { return dimensionTable.Parse(s) }

// Difficulty is the world difficulty. Wire: unsigned byte.
type Difficulty uint8

const (
	Peaceful Difficulty = iota
	Easy
	Medium
	Hard
)

var difficultyTable = enum.NewTable("difficulty",
	enum.Entry[Difficulty, uint8]{Value: Peaceful, Disc: 0, Name: "peaceful"},
	enum.Entry[Difficulty, uint8]{Value: Easy, Disc: 1, Name: "easy"},
	enum.Entry[Difficulty, uint8]{Value: Medium, Disc: 2, Name: "medium"},
	enum.Entry[Difficulty, uint8]{Value: Hard, Disc: 3, Name: "hard"},
)

// Difficulties is the wire codec for Difficulty.
var Difficulties = enum.NewCodec(difficultyTable, wire.Uint8)

func (d Difficulty) Discriminant() (uint8, bool) { return difficultyTable.Disc(d) }

func (d Difficulty) String() string {
	if name, ok := difficultyTable.Name(d); ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", uint8(d))
}

func (d Difficulty) MarshalText() ([]byte, error) { return marshalName(difficultyTable, d) }

func (d *Difficulty) UnmarshalText(text []byte) error {
	return unmarshalName(difficultyTable, text, d)
}

func ParseDifficulty(s string) (Difficulty, bool) { return difficultyTable.Parse(s) }

// Gamemode is a player's game mode. Wire: unsigned byte.
type Gamemode uint8

const (
	Survival Gamemode = iota
	Creative
	Adventure
	Spectator
)

var gamemodeTable = enum.NewTable("gamemode",
	enum.Entry[Gamemode, uint8]{Value: Survival, Disc: 0, Name: "survival"},
	enum.Entry[Gamemode, uint8]{Value: Creative, Disc: 1, Name: "creative"},
	enum.Entry[Gamemode, uint8]{Value: Adventure, Disc: 2, Name: "adventure"},
	enum.Entry[Gamemode, uint8]{Value: Spectator, Disc: 3, Name: "spectator"},
)

// Gamemodes is the wire codec for Gamemode.
var Gamemodes = enum.NewCodec(gamemodeTable, wire.Uint8)

func (g Gamemode) Discriminant() (uint8, bool) { return gamemodeTable.Disc(g) }

func (g Gamemode) String() string {
	if name, ok := gamemodeTable.Name(g); ok {
		return name
	}
	return fmt.Sprintf("gamemode(%d)", uint8(g))
}

func (g Gamemode) MarshalText() ([]byte, error) { return marshalName(gamemodeTable, g) }

func (g *Gamemode) UnmarshalText(text []byte) error {
	return unmarshalName(gamemodeTable, text, g)
}

func ParseGamemode(s string) (Gamemode, bool) { return gamemodeTable.Parse(s) }

// Abilities is the player abilities flag set sent alongside a game mode.
type Abilities uint8

const (
	Invulnerable Abilities = 1 << iota
	Flying
	AllowFlying
	CreativeMode
)

func (a Abilities) Has(flag Abilities) bool { return a&flag == flag }

// Abilities returns the flags a player in mode g starts with.
func (g Gamemode) Abilities() Abilities {
	switch g {
	case Creative:
		return CreativeMode | AllowFlying | Invulnerable
	case Adventure:
		return Invulnerable
	case Spectator:
		return AllowFlying | Invulnerable
	default:
		return 0
	}
}
