package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danmuck/blockwire/internal/protocol/enum"
	"github.com/danmuck/blockwire/internal/protocol/wire"
	"github.com/danmuck/blockwire/internal/testutil/testlog"
)

func assertEnumRoundTrip[E comparable, R enum.Integer](t *testing.T, c *enum.Codec[E, R]) {
	t.Helper()
	for _, v := range c.Table().Values() {
		var buf bytes.Buffer
		if err := c.Encode(&buf, v); err != nil {
			t.Fatalf("encode %v: %v", v, err)
		}
		if buf.Len() != c.Len(v) {
			t.Fatalf("len mismatch for %v: wrote=%d len=%d", v, buf.Len(), c.Len(v))
		}
		out, err := c.Decode(&buf)
		if err != nil {
			t.Fatalf("decode %v: %v", v, err)
		}
		if out != v {
			t.Fatalf("round-trip mismatch: got=%v want=%v", out, v)
		}
	}
}

// assertEnumRejects decodes every byte value and checks that exactly the
// valid set decodes, each attempt consuming one byte.
func assertEnumRejects[E comparable, R enum.Integer](t *testing.T, c *enum.Codec[E, R], valid map[byte]E) {
	t.Helper()
	for b := 0; b < 256; b++ {
		r := bytes.NewReader([]byte{byte(b), 0xEE})
		v, err := c.Decode(r)
		if r.Len() != 1 {
			t.Fatalf("byte %#x consumed %d bytes", b, 2-r.Len())
		}
		want, ok := valid[byte(b)]
		if !ok {
			if !errors.Is(err, enum.ErrInvalidDiscriminant) {
				t.Fatalf("byte %#x: expected ErrInvalidDiscriminant, got v=%v err=%v", b, v, err)
			}
			continue
		}
		if err != nil || v != want {
			t.Fatalf("byte %#x: got v=%v err=%v want %v", b, v, err, want)
		}
	}
}

func TestDimensionCodec(t *testing.T) {
	testlog.Start(t)
	assertEnumRoundTrip(t, Dimensions)
	assertEnumRejects(t, Dimensions, map[byte]Dimension{0xFF: Nether, 0x00: Overworld, 0x01: End})

	got, err := wire.Marshal[Dimension](Dimensions, Nether)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF}) {
		t.Fatalf("nether must encode as 0xFF, got %x", got)
	}
}

func TestDifficultyCodec(t *testing.T) {
	testlog.Start(t)
	assertEnumRoundTrip(t, Difficulties)
	assertEnumRejects(t, Difficulties, map[byte]Difficulty{0: Peaceful, 1: Easy, 2: Medium, 3: Hard})
}

func TestGamemodeCodec(t *testing.T) {
	testlog.Start(t)
	assertEnumRoundTrip(t, Gamemodes)
	assertEnumRejects(t, Gamemodes, map[byte]Gamemode{0: Survival, 1: Creative, 2: Adventure, 3: Spectator})
}

func TestDiscriminantAccessors(t *testing.T) {
	testlog.Start(t)
	if d, ok := Nether.Discriminant(); !ok || d != -1 {
		t.Fatalf("nether discriminant: got=%d ok=%v", d, ok)
	}
	if d, ok := Hard.Discriminant(); !ok || d != 3 {
		t.Fatalf("hard discriminant: got=%d ok=%v", d, ok)
	}
	if d, ok := Spectator.Discriminant(); !ok || d != 3 {
		t.Fatalf("spectator discriminant: got=%d ok=%v", d, ok)
	}
	if _, ok := Dimension(9).Discriminant(); ok {
		t.Fatalf("unknown dimension reported a discriminant")
	}
}

func TestGamemodeAbilities(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		mode Gamemode
		bits Abilities
	}{
		{Survival, 0b0000},
		{Creative, 0b1101},
		{Adventure, 0b0001},
		{Spectator, 0b0101},
	}
	for _, tc := range cases {
		if got := tc.mode.Abilities(); got != tc.bits {
			t.Fatalf("%s abilities: got=%04b want=%04b", tc.mode, got, tc.bits)
		}
	}
	creative := Creative.Abilities()
	if !creative.Has(CreativeMode|AllowFlying) || creative.Has(Flying) {
		t.Fatalf("unexpected creative flags: %04b", creative)
	}
}

func TestEnumTextForms(t *testing.T) {
	testlog.Start(t)
	type settings struct {
		Dimension  Dimension  `json:"dimension"`
		Difficulty Difficulty `json:"difficulty"`
		Gamemode   Gamemode   `json:"gamemode"`
	}
	in := settings{Dimension: End, Difficulty: Medium, Gamemode: Adventure}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"dimension":"end","difficulty":"medium","gamemode":"adventure"}` {
		t.Fatalf("unexpected json: %s", data)
	}
	var out settings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", out, in)
	}
	var d Difficulty
	if err := d.UnmarshalText([]byte("normal")); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("expected ErrUnknownName, got %v", err)
	}
	if _, err := Gamemode(7).MarshalText(); !errors.Is(err, enum.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
	if s := Gamemode(7).String(); s != "gamemode(7)" {
		t.Fatalf("unexpected fallback name %q", s)
	}
	if v, ok := ParseDimension("nether"); !ok || v != Nether {
		t.Fatalf("parse dimension: got=%v ok=%v", v, ok)
	}
}
