package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/jsonwatch/format"
	"github.com/signadot/jsonwatch/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v desc='verbose logging'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat gives the format for reading path, "-" denoting stdin.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) encOpts() []format.EncodeOption {
	return []format.EncodeOption{
		format.EncodeFormat(cfg.outFormat()),
		format.EncodeWire(cfg.WireOut),
	}
}

// colors returns the colors for writing to w, or nil for plain output.
func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	if cfg.Main == nil {
		return nil
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Paths     []string
	When      string `cli:"name=when desc='only report values for which the expression holds'"`
	Diff      bool   `cli:"name=diff desc='report changes against the previously reported value'"`
	Loop      string `cli:"name=loop desc='command producing documents to watch in a loop'"`
	LoopEvery time.Duration
	LoopLim   int  `cli:"name=loopLim desc='max number of times to loop'"`
	Gops      bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Watch *cli.Command
}

func (cfg *WatchConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: -loopEvery must be positive, got %s", cli.ErrUsage, d)
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type ReplayConfig struct {
	*MainConfig
	Paths []string
	When  string `cli:"name=when desc='only report values for which the expression holds'"`
	Diff  bool   `cli:"name=diff desc='report changes against the previously reported value'"`
	Keep  bool   `cli:"name=k desc='keep going after a failed step'"`

	Replay *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='diff the indented json text'"`
	Obj     bool `cli:"name=obj desc='output the changes as a document'"`

	Diff *cli.Command
}
