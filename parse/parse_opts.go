package parse

import (
	"github.com/signadot/structext/format"
)

type parseOpts struct {
	format  format.Format
	lenient bool
	jsonc   bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseBlock() ParseOption {
	return ParseFormat(format.BlockFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Lenient makes the block parser skip mapping lines without a key
// separator instead of failing.
func Lenient(v bool) ParseOption {
	return func(o *parseOpts) { o.lenient = v }
}

// JSONC makes the JSON parser accept comments and trailing commas.
func JSONC(v bool) ParseOption {
	return func(o *parseOpts) { o.jsonc = v }
}
