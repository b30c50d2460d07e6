package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	in := cfg.inFormat()
	encOpts := cfg.encOpts(cc.Out, format.JSONFormat)
	return eachInput(cc, args, func(_ string, d []byte) error {
		node, err := parse.Parse(d, cfg.parseOpts(in)...)
		if err != nil {
			return err
		}
		j, err := json.Marshal(node)
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		tree, err := parse.Parse(j, parse.ParseJSON())
		if err != nil {
			return fmt.Errorf("error parsing tree: %w", err)
		}
		return encode.Encode(tree, cc.Out, encOpts...)
	})
}
