package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/danmuck/blockwire/internal/config"
	"github.com/danmuck/blockwire/internal/protocol/types"
	"github.com/danmuck/blockwire/internal/protocol/wire"
)

func runEncode(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	path, err := singleArg(flagSet, args, "fixture")
	if err != nil {
		return err
	}
	fixture, err := config.LoadFixture(path)
	if err != nil {
		return err
	}
	items, err := fixture.Items()
	if err != nil {
		return err
	}
	log.Debug().Str("fixture", path).Int("values", len(items)).Msg("fixture loaded")
	for i, item := range items {
		line, err := encodeItem(item)
		if err != nil {
			return fmt.Errorf("values[%d]: %w", i, err)
		}
		fmt.Fprintf(stdout, "%s\t%s\n", item.Kind, line)
	}
	return nil
}

// encodeItem returns the hex wire form of a binary value, or the JSON text
// form of a color.
func encodeItem(item config.Item) (string, error) {
	var (
		data []byte
		err  error
	)
	switch item.Kind {
	case config.KindDimension:
		data, err = wire.Marshal[types.Dimension](types.Dimensions, item.Dimension)
	case config.KindDifficulty:
		data, err = wire.Marshal[types.Difficulty](types.Difficulties, item.Difficulty)
	case config.KindGamemode:
		data, err = wire.Marshal[types.Gamemode](types.Gamemodes, item.Gamemode)
	case config.KindSlot:
		data, err = wire.Marshal[*types.Slot](types.Slots, item.Slot)
	case config.KindColor:
		text, err := json.Marshal(item.Color)
		if err != nil {
			return "", err
		}
		return string(text), nil
	default:
		return "", fmt.Errorf("unknown kind %q", item.Kind)
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}
