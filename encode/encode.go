// Package encode writes [ir.Node] trees as block text, JSON or YAML.
package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/structext/debug"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the format given by opts, block text by
// default.  Nothing is written if encoding fails.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encoding %s as %s", node.Type, es.format)
	}
	var d []byte
	switch es.format {
	case format.JSONFormat:
		buf := &bytes.Buffer{}
		if err := encodeJSON(buf, node, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
		d = buf.Bytes()
	case format.YAMLFormat:
		var err error
		d, err = encodeYAML(node)
		if err != nil {
			return err
		}
	default:
		d = []byte(blockDocument(node, es))
	}
	_, err := w.Write(d)
	return err
}

// blockDocument is the block text of a whole document.  Unlike
// ToBlockText an empty top level container is written as {} or [].
func blockDocument(node *ir.Node, es *EncState) string {
	if node.IsEmptyContainer() {
		return scalarText(node, es) + "\n"
	}
	b := &strings.Builder{}
	writeBlock(b, node, 0, es)
	return b.String()
}

func encodeJSON(w *bytes.Buffer, node *ir.Node, es *EncState) error {
	switch node.Type {
	case ir.NullType, ir.BoolType:
		w.WriteString(scalarText(node, es))
		return nil
	case ir.NumberType:
		v, err := jsonNumber(node)
		if err != nil {
			return err
		}
		w.WriteString(applyColor(es, ir.NumberType, ValueColor, v))
		return nil
	case ir.StringType:
		w.WriteString(applyColor(es, ir.StringType, ValueColor, jsonString(node.String)))
		return nil
	case ir.ArrayType, ir.ObjectType:
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
	open, close := "[", "]"
	if node.Type == ir.ObjectType {
		open, close = "{", "}"
	}
	open = applyColor(es, node.Type, SepColor, open)
	close = applyColor(es, node.Type, SepColor, close)
	if len(node.Values) == 0 {
		w.WriteString(open + close)
		return nil
	}
	es.depth++
	ind := strings.Repeat(" ", es.depth*es.indent)
	w.WriteString(open)
	for i, v := range node.Values {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
		w.WriteString(ind)
		if node.Type == ir.ObjectType {
			w.WriteString(applyColor(es, ir.ObjectType, FieldColor, jsonString(node.Fields[i])))
			w.WriteString(": ")
		}
		if err := encodeJSON(w, v, es); err != nil {
			return err
		}
	}
	es.depth--
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(" ", es.depth*es.indent))
	w.WriteString(close)
	return nil
}

func jsonNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 == nil {
		return "", fmt.Errorf("%w: number without value", ErrEncoding)
	}
	d, err := json.Marshal(*node.Float64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(d), nil
}

func jsonString(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func encodeYAML(node *ir.Node) ([]byte, error) {
	d, err := yaml.MarshalWithOptions(ir.ToMapSlice(node),
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}
