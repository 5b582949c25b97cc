package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/danmuck/blockwire/internal/protocol/nbt"
	"github.com/danmuck/blockwire/internal/protocol/types"
	"github.com/danmuck/blockwire/internal/protocol/wire"
)

type enumReport struct {
	Type  string `json:"type" cbor:"type"`
	Value any    `json:"value" cbor:"value"`
	Disc  int64  `json:"discriminant" cbor:"discriminant"`
}

type slotReport struct {
	Empty  bool       `json:"empty" cbor:"empty"`
	ID     uint16     `json:"id,omitempty" cbor:"id,omitempty"`
	Count  uint8      `json:"count,omitempty" cbor:"count,omitempty"`
	Damage int16      `json:"damage,omitempty" cbor:"damage,omitempty"`
	Tag    *tagReport `json:"tag,omitempty" cbor:"tag,omitempty"`
}

type tagReport struct {
	Name        string `json:"name" cbor:"name"`
	Compression string `json:"compression,omitempty" cbor:"compression,omitempty"`
	Root        any    `json:"root" cbor:"root"`
}

var errMissingType = errors.New("decode: --type is required")

func runDecode(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	kind := flagSet.String("type", "", "value type: slot|dimension|difficulty|gamemode")
	format := flagSet.String("format", formatJSON, "output format: json|cbor")
	raw, err := singleArg(flagSet, args, "hex")
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(raw), ""))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	report, err := decodeValue(*kind, data)
	if err != nil {
		return err
	}
	return render(stdout, *format, report)
}

func decodeValue(kind string, data []byte) (any, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dimension":
		v, err := wire.Unmarshal[types.Dimension](types.Dimensions, data)
		if err != nil {
			return nil, err
		}
		d, _ := v.Discriminant()
		return enumReport{Type: "dimension", Value: v, Disc: int64(d)}, nil
	case "difficulty":
		v, err := wire.Unmarshal[types.Difficulty](types.Difficulties, data)
		if err != nil {
			return nil, err
		}
		d, _ := v.Discriminant()
		return enumReport{Type: "difficulty", Value: v, Disc: int64(d)}, nil
	case "gamemode":
		v, err := wire.Unmarshal[types.Gamemode](types.Gamemodes, data)
		if err != nil {
			return nil, err
		}
		d, _ := v.Discriminant()
		return enumReport{Type: "gamemode", Value: v, Disc: int64(d)}, nil
	case "slot":
		s, err := wire.Unmarshal[*types.Slot](types.Slots, data)
		if err != nil {
			return nil, err
		}
		return newSlotReport(s), nil
	case "":
		return nil, errMissingType
	default:
		return nil, fmt.Errorf("decode: unknown type %q", kind)
	}
}

func newSlotReport(s *types.Slot) slotReport {
	if s == nil {
		return slotReport{Empty: true}
	}
	out := slotReport{ID: s.ID, Count: s.Count, Damage: s.Damage}
	if s.Tag != nil {
		out.Tag = &tagReport{Name: s.Tag.Name, Root: nbt.ToAny(s.Tag.Root)}
	}
	return out
}

func runNBT(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("nbt", pflag.ContinueOnError)
	format := flagSet.String("format", formatJSON, "output format: json|cbor")
	path, err := singleArg(flagSet, args, "file")
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	blob, kind, err := nbt.BlobCodec{}.ReadCompressed(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return render(stdout, *format, tagReport{
		Name:        blob.Name,
		Compression: kind.String(),
		Root:        nbt.ToAny(blob.Root),
	})
}
