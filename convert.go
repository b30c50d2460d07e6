package structext

import (
	"bytes"
	"strings"

	"github.com/signadot/structext/debug"
	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/parse"
)

// JSONToStructuredText converts JSON text to block text.  Blank input
// gives blank output.  An empty top level object or array is written
// as {} or [].
func JSONToStructuredText(jsonString string, opts ...Option) (string, error) {
	if strings.TrimSpace(jsonString) == "" {
		return "", nil
	}
	o := makeOpts(opts)
	o.colors = nil
	d, err := convert([]byte(jsonString), format.JSONFormat, o.structured(), o)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// StructuredTextToJSON converts block text to JSON indented by two
// spaces.  Text which already looks like JSON is rejected with an error
// wrapping ir.ErrBracketedInput.
func StructuredTextToJSON(text string, opts ...Option) (string, error) {
	if err := checkBracketed(text); err != nil {
		return "", err
	}
	o := makeOpts(opts)
	o.colors = nil
	d, err := convert([]byte(text), o.structured(), format.JSONFormat, o)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(d), "\n"), nil
}

// Convert converts data from one format to another.
func Convert(data []byte, from, to format.Format, opts ...Option) ([]byte, error) {
	o := makeOpts(opts)
	if from.IsBlock() && to.IsJSON() && !o.strictYAML {
		if err := checkBracketed(string(data)); err != nil {
			return nil, err
		}
	}
	return convert(data, from, to, o)
}

func convert(data []byte, from, to format.Format, o *options) ([]byte, error) {
	node, err := parse.Parse(data, o.parseOpts(from)...)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("convert %s -> %s: %v", from, to, node)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, o.encodeOpts(to)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkBracketed(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "{}" || trimmed == "[]" {
		return nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil
	}
	line := 1 + strings.Count(text[:strings.Index(text, trimmed)], "\n")
	return ir.NewFormatError(line, ir.ErrBracketedInput,
		"input is already JSON-like bracketed text; convert it in the JSON to structured text direction instead")
}
