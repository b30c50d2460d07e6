package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/eval"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/parse"
	"github.com/signadot/structext/token"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	env := queryEnv(cfg.Env)
	in, out := cfg.inFormat(), cfg.outFormat()
	encOpts := cfg.encOpts(cc.Out, out)
	falsy := false
	i := 0
	err = eachInput(cc, args[1:], func(name string, d []byte) error {
		doc, err := parse.Parse(d, cfg.parseOpts(in)...)
		if err != nil {
			return err
		}
		if cfg.Test {
			ok, err := eval.Test(doc, src, env)
			if err != nil {
				return fmt.Errorf("error evaluating %q on %s: %w", src, name, err)
			}
			falsy = falsy || !ok
			return nil
		}
		res, err := eval.Query(doc, src, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, name, err)
		}
		if err := separator(cc.Out, i, docSep(out)); err != nil {
			return err
		}
		i++
		return encode.Encode(res, cc.Out, encOpts...)
	})
	if err != nil {
		return err
	}
	if falsy {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// queryEnv reads -e values as block text scalars.
func queryEnv(vars map[string]string) eval.Env {
	env := eval.Env{}
	for k, v := range vars {
		env[k] = ir.ToAny(token.Literal(v))
	}
	return env
}
