package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/token"
)

// Change is a difference between two trees at Path.  From is nil for
// an insertion and To is nil for a deletion.
type Change struct {
	Path string
	From *ir.Node
	To   *ir.Node
}

// Nodes returns the changes turning from into to.  Mapping fields are
// aligned by name and order, sequences by index.
func Nodes(from, to *ir.Node) []Change {
	var res []Change
	diffNode("$", from, to, &res)
	return res
}

func diffNode(path string, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: path, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(path, from, to, res)
	case ir.ArrayType:
		n := min(len(from.Values), len(to.Values))
		for i := 0; i < n; i++ {
			diffNode(indexPath(path, i), from.Values[i], to.Values[i], res)
		}
		for i := n; i < len(from.Values); i++ {
			*res = append(*res, Change{Path: indexPath(path, i), From: from.Values[i]})
		}
		for i := n; i < len(to.Values); i++ {
			*res = append(*res, Change{Path: indexPath(path, i), To: to.Values[i]})
		}
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Path: path, From: from, To: to})
		}
	}
}

// diffObject maps each field name to a rune and diffs the rune strings,
// so reordered or renamed fields show as deletions and insertions.
func diffObject(path string, from, to *ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				*res = append(*res, Change{Path: fieldPath(path, runeMap[r]), From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				diffNode(fieldPath(path, runeMap[r]), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				*res = append(*res, Change{Path: fieldPath(path, runeMap[r]), To: to.Values[ti]})
				ti++
			}
		}
	}
}

func mapFieldsTo(fieldMap map[string]rune, runeMap map[rune]string, node *ir.Node) []rune {
	res := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := fieldMap[f]
		if !ok {
			// stay clear of the surrogate range
			r = rune(0xE000 + len(fieldMap))
			fieldMap[f] = r
			runeMap[r] = f
		}
		res[i] = r
	}
	return res
}

func fieldPath(path, field string) string {
	if token.NeedsKeyQuote(field) || strings.ContainsAny(field, ".[") {
		return path + "[" + token.Quote(field) + "]"
	}
	return path + "." + field
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
