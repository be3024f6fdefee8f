package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsonwatch/format"
	"github.com/signadot/jsonwatch/libdiff"

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
	if cfg.Text && cfg.Obj {
		return fmt.Errorf("%w: must specify at most one of -text -obj", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b any) (bool, error) {
	colors := cfg.colors(w)
	if cfg.Text {
		txt, err := libdiff.Lines(a, b, colors)
		if err != nil {
			return false, err
		}
		if txt == "" {
			return false, nil
		}
		_, err = io.WriteString(w, txt)
		return true, err
	}
	cs := libdiff.Diff(a, b)
	if len(cs) == 0 {
		return false, nil
	}
	theLog.Debug("diff", "changes", len(cs), "counts", libdiff.Count(cs))
	if cfg.Obj {
		doc := make([]any, len(cs))
		for i := range cs {
			doc[i] = cs[i].Plain()
		}
		return true, format.Encode(doc, w, cfg.encOpts()...)
	}
	_, err := io.WriteString(w, libdiff.Format(cs, colors))
	return true, err
}
