package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

var cborMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	// Enum values render as their text names.
	opts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	cborMode, err = opts.EncMode()
	if err != nil {
		panic("wirectl: CBOR encoder initialization failed: " + err.Error())
	}
}

// render writes v as indented JSON, or as CBOR diagnostic notation.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatCBOR:
		data, err := cborMode.Marshal(v)
		if err != nil {
			return err
		}
		diag, err := cbor.Diagnose(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, diag)
		return err
	default:
		return fmt.Errorf("unknown format %q (supported: json, cbor)", format)
	}
}
