package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/liveview-native/core-go/bridge"
	"github.com/liveview-native/core-go/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='encode documents on one line'"`
	Indent  int  `cli:"name=indent desc='indentation width'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	File *FileConfig
	Log  *slog.Logger

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	fc, err := LoadConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.File = fc
	return a, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	indent := cfg.File.Indent
	if cfg.isSet("indent") {
		indent = cfg.Indent
	}
	compact := cfg.File.Compact
	if cfg.isSet("compact") {
		compact = cfg.Compact
	}
	res := []encode.EncodeOption{
		encode.EncodeIndent(indent),
		encode.EncodeCompact(compact),
	}
	switch {
	case cfg.isSet("color"):
		if cfg.Color {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	case cfg.File.Color != nil:
		if *cfg.File.Color {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// bridge returns a bridge rendering documents for w.
func (cfg *MainConfig) bridge(w io.Writer) *bridge.Bridge {
	return bridge.New(&bridge.Config{Log: cfg.Log, Encode: cfg.encOpts(w)})
}

type ViewConfig struct {
	*MainConfig

	KeepWhitespace bool `cli:"name=w desc='keep whitespace-only text'"`
	View           *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='do not print changes'"`
	Merge *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Refs  bool `cli:"name=r aliases=refs desc='print node references only'"`
	Query *cli.Command
}

type FragmentConfig struct {
	*MainConfig

	Quiet    bool `cli:"name=q aliases=quiet desc='do not print changes'"`
	JSON     bool `cli:"name=j aliases=json desc='print the merged fragment json'"`
	Fragment *cli.Command
}
