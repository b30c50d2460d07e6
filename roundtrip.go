package structext

import (
	"bytes"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/libdiff"
	"github.com/signadot/structext/parse"
	"github.com/tidwall/jsonc"
)

// RoundTrip is the result of parsing block text and writing it again.
type RoundTrip struct {
	Input  string
	Output string
	// Idempotent is set when Output is byte for byte Input.
	Idempotent bool
	// Diff is a line diff from Input to Output.
	Diff []libdiff.Line
	// Changes lists the differences between the tree parsed from Input
	// and the tree parsed back from Output.
	Changes []libdiff.Change
}

// CheckRoundTrip parses text as block text and serializes it again.
// Text which is already canonical comes back unchanged.
func CheckRoundTrip(text string, opts ...Option) (*RoundTrip, error) {
	o := makeOpts(opts)
	in := text
	if in != "" && !strings.HasSuffix(in, "\n") {
		in += "\n"
	}
	node, err := parse.Parse([]byte(in), o.parseOpts(format.BlockFormat)...)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, o.encodeOpts(format.BlockFormat)...); err != nil {
		return nil, err
	}
	out := buf.String()
	if in == "" && node.IsEmptyContainer() {
		out = ""
	}
	back, err := parse.Parse([]byte(out), o.parseOpts(format.BlockFormat)...)
	if err != nil {
		return nil, err
	}
	res := &RoundTrip{
		Input:      in,
		Output:     out,
		Idempotent: in == out,
		Diff:       libdiff.Lines(in, out),
		Changes:    libdiff.Nodes(node, back),
	}
	return res, nil
}

// JSONRoundTrip is the result of converting JSON to block text and
// back.
type JSONRoundTrip struct {
	Block string
	JSON  string
	// Equal is set when JSON and the input denote the same value.
	// Numbers compare by value, so 1.0 and 1 are equal.
	Equal bool
	// Patch is a JSON merge patch from the input to JSON when they
	// differ, are both objects or both arrays and hold no null array
	// elements.
	Patch []byte
}

// CheckJSONRoundTrip converts j to block text and back and compares
// the result with j as JSON values.
func CheckJSONRoundTrip(j string, opts ...Option) (*JSONRoundTrip, error) {
	if strings.TrimSpace(j) == "" {
		return nil, ir.NewFormatError(0, ir.ErrInvalidJSON, "invalid JSON: empty input")
	}
	o := makeOpts(opts)
	in, err := parse.Parse([]byte(j), parse.ParseJSON(), parse.JSONC(o.jsonc))
	if err != nil {
		return nil, err
	}
	block, err := JSONToStructuredText(j, opts...)
	if err != nil {
		return nil, err
	}
	back, err := StructuredTextToJSON(block, opts...)
	if err != nil {
		return nil, err
	}
	out, err := parse.Parse([]byte(back), parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	res := &JSONRoundTrip{
		Block: block,
		JSON:  back,
		Equal: sameJSON(in, out),
	}
	if res.Equal || hasNullElement(in) || hasNullElement(out) {
		return res, nil
	}
	src := []byte(j)
	if o.jsonc {
		src = jsonc.ToJSON(src)
	}
	// merge patches only exist between two objects or two arrays
	if patch, err := jsonpatch.CreateMergePatch(src, []byte(back)); err == nil {
		res.Patch = patch
	}
	return res, nil
}

// sameJSON reports whether a and b denote the same JSON value.  Mapping
// field order is ignored and numbers compare by value.
func sameJSON(a, b *ir.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return numberValue(a) == numberValue(b)
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !sameJSON(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		bIndex := make(map[string]int, len(b.Fields))
		for i, f := range b.Fields {
			bIndex[f] = i
		}
		for i, f := range a.Fields {
			j, ok := bIndex[f]
			if !ok || !sameJSON(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	}
	return ir.Equal(a, b)
}

func numberValue(n *ir.Node) float64 {
	if n.Int64 != nil {
		return float64(*n.Int64)
	}
	if n.Float64 != nil {
		return *n.Float64
	}
	return 0
}

// hasNullElement reports whether a sequence anywhere in n holds null.
func hasNullElement(n *ir.Node) bool {
	for _, v := range n.Values {
		if n.Type == ir.ArrayType && v.Type == ir.NullType {
			return true
		}
		if hasNullElement(v) {
			return true
		}
	}
	return false
}
