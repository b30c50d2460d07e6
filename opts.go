package structext

import (
	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/parse"
)

type options struct {
	lenient    bool
	jsonc      bool
	strictYAML bool
	colors     *encode.Colors
}

type Option func(*options)

// WithLenient skips block text lines without a key separator instead
// of failing.
func WithLenient(v bool) Option {
	return func(o *options) { o.lenient = v }
}

// WithJSONC accepts comments and trailing commas in JSON input.
func WithJSONC(v bool) Option {
	return func(o *options) { o.jsonc = v }
}

// WithStrictYAML reads and writes the structured text side as full
// YAML instead of block text.
func WithStrictYAML(v bool) Option {
	return func(o *options) { o.strictYAML = v }
}

// WithColors colors output produced by Convert.
func WithColors(c *encode.Colors) Option {
	return func(o *options) { o.colors = c }
}

func makeOpts(opts []Option) *options {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	return o
}

// structured returns the format used for the structured text side.
func (o *options) structured() format.Format {
	if o.strictYAML {
		return format.YAMLFormat
	}
	return format.BlockFormat
}

func (o *options) parseOpts(f format.Format) []parse.ParseOption {
	fmtOpt := parse.ParseFormat(f)
	switch {
	case f == format.BlockFormat && o.strictYAML, f == format.YAMLFormat:
		fmtOpt = parse.ParseYAML()
	case f == format.BlockFormat:
		fmtOpt = parse.ParseBlock()
	}
	return []parse.ParseOption{
		fmtOpt,
		parse.Lenient(o.lenient),
		parse.JSONC(o.jsonc),
	}
}

func (o *options) encodeOpts(f format.Format) []encode.EncodeOption {
	if f == format.BlockFormat && o.strictYAML {
		f = format.YAMLFormat
	}
	return []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeColors(o.colors),
	}
}
