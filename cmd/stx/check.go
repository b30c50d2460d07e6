package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structext"
	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/libdiff"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	// round trips compare plain text
	opts := append(cfg.options(nil), structext.WithColors(nil))
	bad := 0
	err = eachInput(cc, args, func(name string, d []byte) error {
		var (
			ok  bool
			err error
		)
		if cfg.JSON {
			ok, err = checkJSON(cfg, cc.Out, name, string(d), opts)
		} else {
			ok, err = checkBlock(cfg, cc.Out, name, string(d), opts)
		}
		if err != nil {
			return err
		}
		if !ok {
			bad++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkBlock(cfg *CheckConfig, w io.Writer, name, text string, opts []structext.Option) (bool, error) {
	rt, err := structext.CheckRoundTrip(text, opts...)
	if err != nil {
		return false, err
	}
	if rt.Idempotent {
		return true, nil
	}
	if cfg.Quiet {
		return false, nil
	}
	fmt.Fprintf(w, "%s: not canonical\n", name)
	io.WriteString(w, libdiff.Format(rt.Diff, cfg.Context))
	for _, c := range rt.Changes {
		fmt.Fprintf(w, "%s: value changed at %s: %s\n", name, c.Path, describeChange(c))
	}
	return false, nil
}

func checkJSON(cfg *CheckConfig, w io.Writer, name, j string, opts []structext.Option) (bool, error) {
	rt, err := structext.CheckJSONRoundTrip(j, opts...)
	if err != nil {
		return false, err
	}
	if rt.Equal {
		return true, nil
	}
	if cfg.Quiet {
		return false, nil
	}
	fmt.Fprintf(w, "%s: json changed through block text\n", name)
	if rt.Patch != nil {
		fmt.Fprintf(w, "merge patch: %s\n", rt.Patch)
		return false, nil
	}
	io.WriteString(w, libdiff.Format(libdiff.Lines(j, rt.JSON+"\n"), cfg.Context))
	return false, nil
}

func describeChange(c libdiff.Change) string {
	switch {
	case c.From == nil:
		return "added " + brief(c.To)
	case c.To == nil:
		return "removed " + brief(c.From)
	}
	return brief(c.From) + " -> " + brief(c.To)
}

// brief is the block text of a scalar or the type name of a container.
func brief(n *ir.Node) string {
	if n.Type.IsLeaf() {
		return strings.TrimSpace(encode.ToBlockText(n, 0))
	}
	return n.Type.String()
}
