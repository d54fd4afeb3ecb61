package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "bstmeasure",
		Usage:   "measure and inspect unbalanced binary search trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "trace tree operations",
				EnvVars: []string{"BST_VERBOSE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
			if cctx.Bool("verbose") {
				tracing.Select("bst").SetTraceLevel(tracing.LevelDebug)
			} else {
				tracing.Select("bst").SetTraceLevel(tracing.LevelError)
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdShape,
		cmdBench,
		cmdPrint,
		cmdRebuild,
	}
	return app.Run(args)
}

var sizeFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "n",
		Usage:   "number of values to insert",
		Value:   100000,
		EnvVars: []string{"BST_N"},
	},
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "seed of the random values",
		EnvVars: []string{"BST_SEED"},
	},
}

var (
	label = color.New(color.FgCyan)
	bad   = color.New(color.FgYellow)
)

func report(name string, format string, a ...any) {
	label.Printf("%-16s", name)
	fmt.Printf(format+"\n", a...)
}
