package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/structext"
	"github.com/signadot/structext/config"
	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Lenient bool `cli:"name=lenient desc='skip block text lines without a key separator'"`
	JSONC   bool `cli:"name=jsonc desc='accept comments and trailing commas in json'"`
	Strict  bool `cli:"name=strict desc='read and write structured text as full yaml'"`
	Verbose bool `cli:"name=v desc='verbose logging'"`

	B bool `cli:"name=b aliases=block desc='do i/o in block text'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	// File holds defaults from the configuration file.
	File *config.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) file() *config.Config {
	if cfg.File == nil {
		return config.Default()
	}
	return cfg.File
}

// ioFormat is the format selected by -b, -j or -y, or def.
func (cfg *MainConfig) ioFormat(def format.Format) format.Format {
	switch {
	case cfg.B:
		return format.BlockFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return def
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.ioFormat(cfg.file().InputFormat(format.BlockFormat))
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.ioFormat(cfg.file().OutputFormat(format.BlockFormat))
}

func (cfg *MainConfig) lenient() bool { return cfg.Lenient || cfg.file().Lenient }
func (cfg *MainConfig) jsonc() bool   { return cfg.JSONC || cfg.file().JSONC }
func (cfg *MainConfig) strict() bool  { return cfg.Strict || cfg.file().Strict }

func (cfg *MainConfig) parseOpts(f format.Format) []parse.ParseOption {
	if f.IsBlock() && cfg.strict() {
		f = format.YAMLFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(f),
		parse.Lenient(cfg.lenient()),
		parse.JSONC(cfg.jsonc()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	if f.IsBlock() && cfg.strict() {
		f = format.YAMLFormat
	}
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

func (cfg *MainConfig) options(w io.Writer) []structext.Option {
	return []structext.Option{
		structext.WithLenient(cfg.lenient()),
		structext.WithJSONC(cfg.jsonc()),
		structext.WithStrictYAML(cfg.strict()),
		structext.WithColors(cfg.colors(w)),
	}
}

// colors returns the colors for output to w, or nil for plain output.
// -color forces colors, otherwise the configuration file decides and
// "auto" colors terminals only.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
	}
	switch cfg.file().Color {
	case config.ColorNever:
		return nil
	case config.ColorAlways:
		color.NoColor = false
		return encode.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type ToBlockConfig struct {
	*MainConfig
	ToBlock *cli.Command
}

type ToJSONConfig struct {
	*MainConfig
	ToJSON *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig
	JSON    bool `cli:"name=j desc='check json to block to json equality'"`
	Context int  `cli:"name=U desc='lines of diff context'"`
	Quiet   bool `cli:"name=q desc='do not print diffs'"`

	Check *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env  map[string]string
	Test bool `cli:"name=t desc='exit 1 unless the expression is truthy'"`

	Query *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}
