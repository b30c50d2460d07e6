package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/token"
)

var ErrPath = errors.New("path error")

// GetPath returns the node at path in doc.  A path starts with $ and
// continues with .field, [index] or ["quoted field"] steps.
func GetPath(doc *ir.Node, path string) (*ir.Node, error) {
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("%w: %q does not start with $", ErrPath, path)
	}
	node := doc
	rest := path[1:]
	for rest != "" {
		var (
			field string
			index = -1
			err   error
		)
		switch rest[0] {
		case '.':
			end := strings.IndexAny(rest[1:], ".[")
			if end < 0 {
				end = len(rest) - 1
			}
			field = rest[1 : end+1]
			rest = rest[end+1:]
			if field == "" {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, path)
			}
		case '[':
			end := closingBracket(rest)
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated [ in %q", ErrPath, path)
			}
			inner := rest[1:end]
			rest = rest[end+1:]
			if strings.HasPrefix(inner, `"`) {
				field, err = token.Unquote(inner)
				if err != nil {
					return nil, fmt.Errorf("%w: bad field %s in %q: %w", ErrPath, inner, path, err)
				}
			} else {
				index, err = strconv.Atoi(inner)
				if err != nil || index < 0 {
					return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, inner, path)
				}
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, rest[0], path)
		}
		if index >= 0 {
			if node.Type != ir.ArrayType || index >= len(node.Values) {
				return nil, fmt.Errorf("%w: no index %d in %s", ErrPath, index, node.Type)
			}
			node = node.Values[index]
			continue
		}
		next := node.Get(field)
		if next == nil {
			return nil, fmt.Errorf("%w: no field %q in %s", ErrPath, field, node.Type)
		}
		node = next
	}
	return node, nil
}

func closingBracket(s string) int {
	inQuote := false
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if inQuote {
				i++
			}
		case '"':
			inQuote = !inQuote
		case ']':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
