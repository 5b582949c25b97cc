package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/blockwire/internal/protocol/nbt"
	"github.com/danmuck/blockwire/internal/protocol/types"
)

// Value kinds accepted in fixture files.
const (
	KindDimension  = "dimension"
	KindDifficulty = "difficulty"
	KindGamemode   = "gamemode"
	KindColor      = "color"
	KindSlot       = "slot"
)

// Fixture is a list of values to encode, loaded from TOML.
type Fixture struct {
	Values []ValueConfig `toml:"values"`
}

type ValueConfig struct {
	Type   string     `toml:"type"`
	Value  string     `toml:"value"`
	Empty  bool       `toml:"empty"`
	ID     int64      `toml:"id"`
	Count  int64      `toml:"count"`
	Damage int64      `toml:"damage"`
	Tag    *TagConfig `toml:"tag"`
}

type TagConfig struct {
	Name string         `toml:"name"`
	Root map[string]any `toml:"root"`
}

// Item is one fixture value resolved to its domain type. Only the field
// matching Kind is set.
type Item struct {
	Kind       string
	Dimension  types.Dimension
	Difficulty types.Difficulty
	Gamemode   types.Gamemode
	Color      types.Color
	Slot       *types.Slot
}

func LoadFixture(path string) (Fixture, error) {
	var cfg Fixture
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Fixture{}, fmt.Errorf("fixture load failed (%s): %w", path, err)
	}
	if err := ValidateFixture(cfg); err != nil {
		return Fixture{}, fmt.Errorf("fixture invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func ParseFixture(data string) (Fixture, error) {
	var cfg Fixture
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Fixture{}, fmt.Errorf("fixture parse failed: %w", err)
	}
	if err := ValidateFixture(cfg); err != nil {
		return Fixture{}, err
	}
	return cfg, nil
}

func ValidateFixture(cfg Fixture) error {
	if len(cfg.Values) == 0 {
		return fmt.Errorf("fixture has no values")
	}
	for i, v := range cfg.Values {
		if _, err := v.Item(); err != nil {
			return fmt.Errorf("values[%d] invalid: %w", i, err)
		}
	}
	return nil
}

// Items resolves every fixture value.
func (f Fixture) Items() ([]Item, error) {
	items := make([]Item, 0, len(f.Values))
	for i, v := range f.Values {
		item, err := v.Item()
		if err != nil {
			return nil, fmt.Errorf("values[%d] invalid: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (v ValueConfig) Item() (Item, error) {
	kind := strings.ToLower(strings.TrimSpace(v.Type))
	item := Item{Kind: kind}
	name := strings.TrimSpace(v.Value)
	var ok bool
	switch kind {
	case KindDimension:
		item.Dimension, ok = types.ParseDimension(name)
	case KindDifficulty:
		item.Difficulty, ok = types.ParseDifficulty(name)
	case KindGamemode:
		item.Gamemode, ok = types.ParseGamemode(name)
	case KindColor:
		item.Color, ok = types.ParseColor(name)
	case KindSlot:
		slot, err := v.slot()
		if err != nil {
			return Item{}, err
		}
		item.Slot = slot
		return item, nil
	case "":
		return Item{}, fmt.Errorf("type is required")
	default:
		return Item{}, fmt.Errorf("unknown type %q", v.Type)
	}
	if !ok {
		return Item{}, fmt.Errorf("unknown %s %q", kind, v.Value)
	}
	return item, nil
}

func (v ValueConfig) slot() (*types.Slot, error) {
	if v.Empty {
		if v.Tag != nil {
			return nil, fmt.Errorf("empty slot cannot carry a tag")
		}
		return nil, nil
	}
	if v.ID < 0 || v.ID > int64(types.MaxItemID) {
		return nil, fmt.Errorf("id %d out of range 0..%d", v.ID, types.MaxItemID)
	}
	if v.Count < 0 || v.Count > math.MaxUint8 {
		return nil, fmt.Errorf("count %d out of range 0..255", v.Count)
	}
	if v.Damage < math.MinInt16 || v.Damage > math.MaxInt16 {
		return nil, fmt.Errorf("damage %d out of int16 range", v.Damage)
	}
	slot := &types.Slot{ID: uint16(v.ID), Count: uint8(v.Count), Damage: int16(v.Damage)}
	if v.Tag != nil {
		root, err := nbt.FromAny(v.Tag.Root)
		if err != nil {
			return nil, fmt.Errorf("tag: %w", err)
		}
		slot.Tag = &nbt.Blob{Name: v.Tag.Name, Root: root.(nbt.Compound)}
	}
	return slot, nil
}
