package token

import (
	"strconv"
	"strings"

	"github.com/signadot/structext/ir"
)

// Literal returns the node denoted by the raw scalar token v, which
// should already be trimmed.
//
//	true, false     boolean
//	null            null
//	-?\d+           integer (float if it overflows int64)
//	-?\d+\.\d+      float
//	"..." or '...'  string without the quotes
//	[] and {}       empty sequence and mapping
//
// Anything else is the string v verbatim.
func Literal(v string) *ir.Node {
	switch v {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	case "[]":
		return ir.EmptyArray()
	case "{}":
		return ir.EmptyObject()
	}
	if IsInt(v) {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return ir.FromInt(i)
		}
		f, _ := strconv.ParseFloat(v, 64)
		return ir.FromFloat(f)
	}
	if IsFloat(v) {
		f, _ := strconv.ParseFloat(v, 64)
		return ir.FromFloat(f)
	}
	if IsQuoted(v) {
		return ir.FromString(QuotedToString(v))
	}
	return ir.FromString(v)
}

// IsQuoted reports whether v starts and ends with the same quote
// character.
func IsQuoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	q := v[0]
	return (q == '"' || q == '\'') && v[len(v)-1] == q
}

// QuotedToString returns the contents of the quoted token v.  Double
// quoted tokens have their escapes decoded and single quoted tokens
// have '' reduced to '.  A double quoted token which is not a single
// well formed string has its outer quotes stripped and nothing else.
func QuotedToString(v string) string {
	if v[0] == '\'' {
		return strings.ReplaceAll(v[1:len(v)-1], "''", "'")
	}
	s, err := Unquote(v)
	if err != nil {
		return v[1 : len(v)-1]
	}
	return s
}
