package main

import (
	"fmt"

	"github.com/signadot/jsonwatch/format"
	"github.com/signadot/jsonwatch/value"
	"github.com/signadot/jsonwatch/watch"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	n := 0
	for _, arg := range argsOrStdin(args[1:]) {
		err := eachDoc(cfg.MainConfig, cc, arg, func(doc any) error {
			v, err := getPath(doc, path)
			if err != nil {
				return err
			}
			if value.IsUndefined(v) {
				theLog.Debug("undefined", "path", path, "file", arg)
				return nil
			}
			if n > 0 && cfg.outFormat() == format.YAMLFormat {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			n++
			return format.Encode(v, cc.Out, cfg.encOpts()...)
		})
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
	}
	return nil
}

func getPath(doc any, path string) (any, error) {
	n, err := watch.New(doc).Child(path)
	if err != nil {
		return nil, err
	}
	return n.Value(), nil
}
