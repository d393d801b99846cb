package main

import (
	"fmt"

	"github.com/liveview-native/core-go/bridge"

	"github.com/scott-cotton/cli"
)

func fragmentMerge(cfg *FragmentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fragment.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: fragment requires a markup file and at least one json file", cli.ErrUsage)
	}
	b := cfg.bridge(cc.Out)
	doc, err := parseDocument(b, cc, args[0])
	if err != nil {
		return err
	}
	defer closeBridge(cfg.MainConfig, b, doc)
	var h bridge.ChangeHandler
	if !cfg.Quiet {
		h = changePrinter(cc.Out)
	}
	for _, file := range args[1:] {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := b.DocumentMergeFragmentJSON(doc, string(d), h); err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	if cfg.JSON {
		js, err := b.DocumentFragmentJSON(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, js)
		return err
	}
	return printDocument(cc.Out, b, doc)
}
