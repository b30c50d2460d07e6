package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: block/b, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: block/b, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "stx").
		WithSynopsis("stx [opts] command [opts]").
		WithDescription("stx converts between json and indented block text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stxMain(cfg, cc, args)
		}).
		WithSubs(
			ToBlockCommand(cfg),
			ToJSONCommand(cfg),
			ConvertCommand(cfg),
			CheckCommand(cfg),
			QueryCommand(cfg),
			DumpCommand(cfg))
}

func ToBlockCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToBlockConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ToBlock, "to-block").
		WithAliases("tb").
		WithSynopsis("to-block [files]").
		WithDescription("convert json documents to block text").
		WithRun(func(cc *cli.Context, args []string) error {
			return toBlock(cfg, cc, args)
		})
}

func ToJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToJSONConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ToJSON, "to-json").
		WithAliases("tj").
		WithSynopsis("to-json [files]").
		WithDescription("convert block text documents to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert [files]").
		WithDescription("convert documents from the -I format to the -O format").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithSynopsis("check [-j] [files]").
		WithDescription("check that documents survive a round trip unchanged").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg, Env: map[string]string{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind name to val in the expression environment",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-t] [-e name=val]... <expr> [files]").
		WithDescription("evaluate an expression with the document bound to doc").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the parsed tree of documents as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]string, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	env[name] = val
	return nil
}
