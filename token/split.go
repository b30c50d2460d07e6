package token

import (
	"strings"

	"github.com/signadot/structext/ir"
)

// SeqItem reports whether line, stripped of indentation, is a sequence
// item and returns the text after the dash.
func SeqItem(line string) (string, bool) {
	if line == "-" {
		return "", true
	}
	if strings.HasPrefix(line, "- ") {
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}

// SplitEntry splits a mapping entry line, stripped of indentation, into
// its key and the trimmed text after the separator.
//
// A key may be quoted, in which case it may contain colons.  Otherwise
// the separator is the first colon followed by a space or ending the
// line, or failing that the first colon.
func SplitEntry(line string) (key, rest string, err error) {
	if len(line) > 0 && (line[0] == '"' || line[0] == '\'') {
		if k, r, ok := splitQuotedKey(line); ok {
			return k, r, nil
		}
		return "", "", ir.ErrNoSeparator
	}
	i := separator(line)
	if i < 0 {
		return "", "", ir.ErrNoSeparator
	}
	key = strings.TrimSpace(line[:i])
	if key == "" {
		return "", "", ir.ErrEmptyKey
	}
	if IsQuoted(key) {
		key = QuotedToString(key)
	}
	return key, strings.TrimSpace(line[i+1:]), nil
}

// HasSeparator reports whether line is a mapping entry with a quoted
// key or a colon followed by a space or ending the line.  Unlike
// [SplitEntry] it does not fall back to the first colon, so that
// "http://host" is not an entry.
func HasSeparator(line string) bool {
	if len(line) > 0 && (line[0] == '"' || line[0] == '\'') {
		_, _, ok := splitQuotedKey(line)
		return ok
	}
	i := separator(line)
	if i < 0 {
		return false
	}
	return i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t'
}

func separator(line string) int {
	first := -1
	for i := 0; i < len(line); i++ {
		if line[i] != ':' {
			continue
		}
		if first < 0 {
			first = i
		}
		if i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t' {
			return i
		}
	}
	return first
}

func splitQuotedKey(line string) (string, string, bool) {
	q := line[0]
	end := -1
	for i := 1; i < len(line); i++ {
		c := line[i]
		if q == '"' && c == '\\' {
			i++
			continue
		}
		if c != q {
			continue
		}
		if q == '\'' && i+1 < len(line) && line[i+1] == '\'' {
			i++
			continue
		}
		end = i
		break
	}
	if end < 0 {
		return "", "", false
	}
	after := strings.TrimLeft(line[end+1:], " \t")
	if !strings.HasPrefix(after, ":") {
		return "", "", false
	}
	return QuotedToString(line[:end+1]), strings.TrimSpace(after[1:]), true
}
