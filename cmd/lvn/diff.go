package main

import (
	"fmt"

	"github.com/liveview-native/core-go/libdiff"
	"github.com/liveview-native/core-go/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	to, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	fromDoc, err := parse.Parse(from)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	toDoc, err := parse.Parse(to)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	patches := libdiff.Diff(fromDoc, toDoc)
	cfg.Log.Debug("diff", "from", args[0], "to", args[1], "patches", len(patches))
	for i := range patches {
		if _, err := fmt.Fprintln(cc.Out, patches[i].String()); err != nil {
			return err
		}
	}
	if len(patches) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
