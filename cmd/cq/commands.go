package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "cq").
		WithSynopsis("cq [opts] command [opts]").
		WithDescription("cq is a tool for working with compound tag documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cqMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			MatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render documents in the text form").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements by dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <from> <to>").
		WithDescription("show the structural diff between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch -p <patchfile> [files]").
		WithOpts(&cli.Opt{
			Name:        "p",
			Description: "RFC 6902 JSON patch file",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.PatchFile = a
				return nil, nil
			}, "(filepath)"),
		}).
		WithDescription("apply a JSON patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("match").
		WithAliases("m").
		WithSynopsis("match -e <program> [files]").
		WithOpts(&cli.Opt{
			Name:        "e",
			Description: "boolean expr program over top-level keys",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Program = a
				return nil, nil
			}, "(program)"),
		}).
		WithDescription("list documents matching a boolean expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
	cfg.Match = cmd
	return cmd
}
