package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{})
}

func mainCommand(cfg *MainConfig) *cli.Command {
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
			Description: "input format: json/j, yaml/y, xml/x, toml/t, auto/a",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, xml/x, toml/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "udt").
		WithSynopsis("udt [opts] command [opts]").
		WithDescription("udt converts documents between json, yaml, xml and toml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return udtMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			DetectCommand(cfg),
			ValidateCommand(cfg),
			ExampleCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg),
			EvalCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [files]").
		WithDescription("convert documents to the -O format (default json)").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func DetectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Detect, "detect").
		WithAliases("d", "det").
		WithSynopsis("detect [files]").
		WithDescription("print the detected format of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return detect(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("val").
		WithSynopsis("validate [-q] [files]").
		WithDescription("check that documents are well formed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func ExampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExampleConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Example, "example").
		WithAliases("ex").
		WithSynopsis("example <format>").
		WithDescription("print the example person record in a format").
		WithRun(func(cc *cli.Context, args []string) error {
			return example(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff two documents of any format as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s] <json-patch> [files]").
		WithDescription("apply an RFC 6902 json patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q", "get").
		WithSynopsis("query [-raw] <path> [files]").
		WithDescription("select values from documents with a gjson path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "set an environment value",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-test] [-e path=val]... <expr> [files]").
		WithDescription("evaluate an expression over documents, bound as doc").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}
