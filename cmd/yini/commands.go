package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "yini").
		WithSynopsis("yini [opts] command [opts]").
		WithDescription("yini is a tool for checking and inspecting yini documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yiniMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			DumpCommand(cfg),
			GetCommand(cfg),
			BenchCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report the diagnostics found in each document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [-f format] [files]").
		WithDescription("print the parsed tree of each document as json, yaml or toml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at a dotted path, such as server.port or users.0.name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func BenchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BenchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("bench").
		WithAliases("b").
		WithSynopsis("bench [-n N] [-w N] [files]").
		WithDescription("time repeated parses of each document, or of a built in sample").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bench(cfg, cc, args)
		})
	cfg.Bench = cmd
	return cmd
}
