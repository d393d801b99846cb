package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/liveview-native/core-go/bridge"
	"github.com/liveview-native/core-go/libdiff"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 args, got %v", cli.ErrUsage, args)
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
		other, err := parseDocument(b, cc, file)
		if err != nil {
			return err
		}
		err = b.DocumentMerge(doc, other, h)
		if dErr := b.DocumentDrop(other); err == nil {
			err = dErr
		}
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	return printDocument(cc.Out, b, doc)
}

func parseDocument(b *bridge.Bridge, cc *cli.Context, file string) (bridge.Handle, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return 0, err
	}
	res := b.DocumentParse(string(d))
	if !res.OK() {
		return 0, fmt.Errorf("error decoding %s: %s", file, res.Error)
	}
	return res.Handle, nil
}

func printDocument(w io.Writer, b *bridge.Bridge, doc bridge.Handle) error {
	s, err := b.DocumentString(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// closeBridge drops doc and warns about handles left behind.
func closeBridge(cfg *MainConfig, b *bridge.Bridge, doc bridge.Handle) {
	if err := b.DocumentDrop(doc); err != nil && !errors.Is(err, bridge.ErrNullHandle) {
		cfg.Log.Warn("drop failed", "error", err)
	}
	if n := b.LiveHandles(); n != 0 {
		cfg.Log.Warn("handles left live", "count", n)
	}
}

func changePrinter(w io.Writer) bridge.ChangeHandler {
	return bridge.ChangeHandlerFunc(func(_ bridge.Handle, change byte, node, parent int32) error {
		var err error
		if parent == bridge.NoRef {
			_, err = fmt.Fprintf(w, "%s #%d\n", libdiff.ChangeType(change), node)
		} else {
			_, err = fmt.Fprintf(w, "%s #%d in #%d\n", libdiff.ChangeType(change), node, parent)
		}
		return err
	})
}
