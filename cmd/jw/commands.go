package main

import (
	"time"

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
			Description: "input format: json/j, yaml/y (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jw").
		WithSynopsis("jw [opts] command [opts]").
		WithDescription("jw watches paths in JSON and YAML documents for changes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jwMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			WatchCommand(cfg),
			ReplayCommand(cfg),
			DiffCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path of each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "w",
			Description: "watch the value at path, may be repeated (default the root)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(pathsOpt(&cfg.Paths)), "(path)"),
		},
		&cli.Opt{
			Name: "loopEvery",
			Type: cli.FuncOpt(cfg.mkLoopEvery()),
		})

	cmd := cli.NewCommand("watch").
		WithAliases("w").
		WithOpts(opts...).
		WithSynopsis("watch [-w path]... [-when expr] [-diff] [files] or watch -loop <cmd>").
		WithDescription(watchDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return watchMain(cfg, cc, args)
		})
	cfg.Watch = cmd
	return cmd
}

const watchDescription = `watch reads a stream of documents and reports changes.

Each document read, from the files given, from stdin when no file is given
or from the output of the -loop command, replaces the watched root. Every
watched path whose value changed as a result is reported on one line

  path: value

in order, with a path reported before the paths below it.

-when filters reports with an expression over

  value    the new value
  kind     its kind: undefined, null, bool, number, string, array, object
  defined  whether the value is defined

for example -when 'kind == "number" && value > 3'.`

func ReplayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplayConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "w",
			Description: "watch the value at path, may be repeated (default the root)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(pathsOpt(&cfg.Paths)), "(path)"),
		})
	return cli.NewCommandAt(&cfg.Replay, "replay").
		WithAliases("r").
		WithSynopsis("replay [-w path]... <doc> <script>").
		WithDescription(replayDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replay(cfg, cc, args)
		})
}

const replayDescription = `replay loads a document and runs a script of writes against it,
reporting changes as watch does.

The script is a list of steps:

  - {op: set, path: a.b, value: 1}
  - {op: delete, path: a.c}
  - {op: root, value: {a: {}}}
  - {op: patch, path: a, patch: [{op: add, path: /d, value: true}]}
  - {op: merge, path: a, patch: {d: null}}

paths are relative to the root and may ascend with '<'.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-text] [-obj] [-r] a b").
		WithDescription("diff two documents, exiting with status 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func pathsOpt(paths *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		*paths = append(*paths, a)
		return a, nil
	}
}
