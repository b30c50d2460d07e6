package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/token"
)

const indentUnit = "  "

// ToBlockText renders node as block text indented by indentLevel
// units of two spaces.  Every line ends with a newline.  Empty
// containers render as no lines at all, except when nested, where they
// are written inline as {} and [].
func ToBlockText(node *ir.Node, indentLevel int) string {
	b := &strings.Builder{}
	writeBlock(b, node, indentLevel, &EncState{})
	return b.String()
}

func writeBlock(b *strings.Builder, node *ir.Node, level int, es *EncState) {
	ind := strings.Repeat(indentUnit, level)
	switch node.Type {
	case ir.ArrayType:
		dash := applyColor(es, ir.ArrayType, SepColor, "-")
		for _, v := range node.Values {
			b.WriteString(ind)
			b.WriteString(dash)
			b.WriteByte(' ')
			if inline(v) {
				b.WriteString(scalarText(v, es))
				b.WriteByte('\n')
				continue
			}
			sub := &strings.Builder{}
			writeBlock(sub, v, level+1, es)
			b.WriteString(strings.TrimLeft(sub.String(), " "))
		}
	case ir.ObjectType:
		sep := applyColor(es, ir.ObjectType, SepColor, ":")
		for i, k := range node.Fields {
			v := node.Values[i]
			b.WriteString(ind)
			b.WriteString(applyColor(es, ir.ObjectType, FieldColor, token.QuoteKey(k)))
			b.WriteString(sep)
			if inline(v) {
				b.WriteByte(' ')
				b.WriteString(scalarText(v, es))
				b.WriteByte('\n')
				continue
			}
			b.WriteByte('\n')
			writeBlock(b, v, level+1, es)
		}
	default:
		b.WriteString(ind)
		b.WriteString(scalarText(node, es))
		b.WriteByte('\n')
	}
}

// inline reports whether v is written on the line of its key or dash.
func inline(v *ir.Node) bool {
	return v.Type.IsLeaf() || v.IsEmptyContainer()
}

func scalarText(node *ir.Node, es *EncState) string {
	var v string
	switch node.Type {
	case ir.NullType:
		v = "null"
	case ir.BoolType:
		v = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		v = numberText(node)
	case ir.StringType:
		v = token.QuoteString(node.String)
	case ir.ArrayType:
		v = "[]"
	case ir.ObjectType:
		v = "{}"
	}
	return applyColor(es, node.Type, ValueColor, v)
}

func numberText(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 == nil {
		return "null"
	}
	f := *node.Float64
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	// floats always carry a fraction so they read back as floats
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return v
}
