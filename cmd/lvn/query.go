package main

import (
	"fmt"

	"github.com/liveview-native/core-go/bridge"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	b := cfg.bridge(cc.Out)
	for _, file := range inputs(args[1:]) {
		if err := queryFile(cfg, cc, b, src, file); err != nil {
			return err
		}
	}
	return nil
}

func queryFile(cfg *QueryConfig, cc *cli.Context, b *bridge.Bridge, src, file string) error {
	doc, err := parseDocument(b, cc, file)
	if err != nil {
		return err
	}
	defer closeBridge(cfg.MainConfig, b, doc)
	refs, err := b.DocumentQuery(doc, src)
	if err != nil {
		return fmt.Errorf("error querying %s: %w", file, err)
	}
	for _, ref := range refs {
		if cfg.Refs {
			if _, err := fmt.Fprintf(cc.Out, "#%d\n", ref); err != nil {
				return err
			}
			continue
		}
		s, err := b.DocumentNodeString(doc, ref)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "#%d\n%s\n", ref, s); err != nil {
			return err
		}
	}
	return nil
}
