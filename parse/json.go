package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/structext/ir"
	"github.com/tidwall/jsonc"
)

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	if opts.jsonc {
		d = jsonc.ToJSON(d)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, jsonError(d, dec, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		off := int(dec.InputOffset())
		return nil, ir.NewFormatError(lineAt(d, off), ir.ErrInvalidJSON,
			"invalid JSON: unexpected content after top-level value")
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := ir.NewMappingBuilder()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T", kt)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res.Node(), nil
		case '[':
			res := ir.EmptyArray()
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Append(val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected %q", rune(x))
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	case json.Number:
		return ir.FromNumberString(string(x))
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonError(d []byte, dec *json.Decoder, err error) error {
	off := int(dec.InputOffset())
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		if len(bytes.TrimSpace(d)) == 0 {
			return ir.NewFormatError(0, ir.ErrInvalidJSON, "invalid JSON: empty input")
		}
		return ir.NewFormatError(lineAt(d, len(d)), ir.ErrInvalidJSON, "invalid JSON: unexpected end of input")
	}
	return ir.NewFormatError(lineAt(d, off), ir.ErrInvalidJSON, "invalid JSON: %s", err.Error())
}

// lineAt returns the 1-based line containing byte offset off of d.
func lineAt(d []byte, off int) int {
	off = min(max(off, 0), len(d))
	return bytes.Count(d[:off], []byte{'\n'}) + 1
}
