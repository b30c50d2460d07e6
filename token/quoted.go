package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// NeedsQuote reports whether the string value v must be quoted to be
// read back as the same string.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, "\n\"':\\") {
		return true
	}
	if hasControlOrEdgeSpace(v) {
		return true
	}
	switch v[0] {
	case '#', '-', '[', '{':
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	return IsInt(v) || IsFloat(v)
}

// NeedsKeyQuote reports whether the mapping key k must be quoted.
func NeedsKeyQuote(k string) bool {
	if k == "" {
		return true
	}
	if strings.ContainsAny(k, "\"':\\") {
		return true
	}
	if hasControlOrEdgeSpace(k) {
		return true
	}
	switch k[0] {
	case '#', '-', '[', '{':
		return true
	}
	return false
}

func hasControlOrEdgeSpace(v string) bool {
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Quote returns v in double quotes with JSON style escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes the double quoted string v.  The closing quote must
// be the last byte of v.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(v) {
		r, sz := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", ErrBadUTF8
		}
		i += sz
		switch {
		case r == '"':
			if i != len(v) {
				return "", ErrTrailing
			}
			return b.String(), nil
		case r == '\\':
			if i >= len(v) {
				return "", ErrUnterminated
			}
			c := v[i]
			i++
			switch c {
			case '"', '\\', '/':
				b.WriteByte(c)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r1, err := hex4(v, i)
				if err != nil {
					return "", err
				}
				i += 4
				if utf16.IsSurrogate(r1) && i+6 <= len(v) && v[i] == '\\' && v[i+1] == 'u' {
					r2, err := hex4(v, i+2)
					if err == nil {
						if dec := utf16.DecodeRune(r1, r2); dec != unicode.ReplacementChar {
							b.WriteRune(dec)
							i += 6
							continue
						}
					}
				}
				b.WriteRune(r1)
			default:
				return "", ErrBadEscape
			}
		case unicode.IsControl(r):
			return "", ErrUnicodeControl
		default:
			b.WriteRune(r)
		}
	}
	return "", ErrUnterminated
}

func hex4(v string, i int) (rune, error) {
	if i+4 > len(v) {
		return 0, ErrUnterminated
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, []byte(v[i:i+4])); err != nil {
		return 0, ErrBadUnicode
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

// QuoteKey returns k, quoted if needed.
func QuoteKey(k string) string {
	if NeedsKeyQuote(k) {
		return Quote(k)
	}
	return k
}

// QuoteString returns v, quoted if needed.
func QuoteString(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
