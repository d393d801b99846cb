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
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "config",
			Description: "configuration file (default ./" + defaultConfigFile + " if present)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "lvn").
		WithSynopsis("lvn [opts] command [opts]").
		WithDescription("lvn parses, renders, diffs and merges LiveView Native markup documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lvnMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			QueryCommand(cfg),
			FragmentCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("parse markup files and print them formatted").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("print the patches turning markup file a into b; exits 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("merge [-q] a b [c ...]").
		WithDescription("merge each following file into document a, printing every change and the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithOpts(opts...).
		WithSynopsis("query [-r] <expr> [files]").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query prints the nodes for which an expression holds.

The expression sees each node through the fields ref, parent, type
(Root, Element or Leaf), namespace, tag, text, attrs and depth, e.g.

  lvn query 'tag == "Text" && depth > 2' page.lvn
  lvn query '"phx-click" in attrs' page.lvn
`

func FragmentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FragmentConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fragment, "fragment").
		WithAliases("f", "frag").
		WithOpts(opts...).
		WithSynopsis("fragment [-q] [-j] <markup file> <json files>").
		WithDescription("merge LiveView rendered fragments, in order, into a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return fragmentMerge(cfg, cc, args)
		})
}
