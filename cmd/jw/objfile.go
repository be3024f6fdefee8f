package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonwatch/format"

	"github.com/scott-cotton/cli"
)

func openObjFile(cc *cli.Context, path string) (io.Reader, func() error, error) {
	if path == "-" {
		return cc.In, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// eachDoc calls fn with every document in path, "-" denoting stdin.
func eachDoc(cfg *MainConfig, cc *cli.Context, path string, fn func(v any) error) error {
	r, closeFn, err := openObjFile(cc, path)
	if err != nil {
		return err
	}
	defer closeFn()
	return decodeEach(r, cfg.inFormat(path), fn)
}

func decodeEach(r io.Reader, f format.Format, fn func(v any) error) error {
	dec := format.NewDecoder(r, f)
	for {
		v, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// getObjFile reads the single document in path.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (any, error) {
	r, closeFn, err := openObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return format.Decode(d, cfg.inFormat(path))
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
