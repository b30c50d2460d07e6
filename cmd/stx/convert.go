package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structext"
	"github.com/signadot/structext/format"
)

func docSep(f format.Format) string {
	if f.IsJSON() {
		return ""
	}
	return "---\n"
}

func toBlock(cfg *ToBlockConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToBlock.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options(cc.Out)
	i := 0
	return eachInput(cc, args, func(_ string, d []byte) error {
		text, err := structext.JSONToStructuredText(string(d), opts...)
		if err != nil {
			return err
		}
		if err := separator(cc.Out, i, "---\n"); err != nil {
			return err
		}
		i++
		_, err = io.WriteString(cc.Out, text)
		return err
	})
}

func toJSON(cfg *ToJSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToJSON.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options(cc.Out)
	return eachInput(cc, args, func(_ string, d []byte) error {
		j, err := structext.StructuredTextToJSON(string(d), opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, j+"\n")
		return err
	})
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	from, to := cfg.inFormat(), cfg.outFormat()
	opts := cfg.options(cc.Out)
	i := 0
	return eachInput(cc, args, func(_ string, d []byte) error {
		out, err := structext.Convert(d, from, to, opts...)
		if err != nil {
			return err
		}
		if err := separator(cc.Out, i, docSep(to)); err != nil {
			return err
		}
		i++
		_, err = cc.Out.Write(out)
		return err
	})
}
