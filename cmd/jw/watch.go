package main

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/signadot/jsonwatch/value"
	"github.com/signadot/jsonwatch/watch"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func watchMain(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop != "" && len(args) != 0 {
		return fmt.Errorf("%w: watch -loop takes no files, got %v", cli.ErrUsage, args)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}

	root := watch.New(value.Undefined)
	p := &notifier{
		w:      cc.Out,
		f:      cfg.outFormat(),
		colors: cfg.colors(cc.Out),
		diff:   cfg.Diff,
	}
	if err := p.watch(root, cfg.Paths, cfg.When); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	setRoot := func(v any) error {
		if err := root.SetRoot(v); err != nil {
			return err
		}
		return p.err
	}
	if cfg.Loop != "" {
		return watchLoop(cfg, setRoot)
	}
	for _, arg := range argsOrStdin(args) {
		if err := eachDoc(cfg.MainConfig, cc, arg, setRoot); err != nil {
			return fmt.Errorf("error watching %s: %w", arg, err)
		}
	}
	return nil
}

func watchLoop(cfg *WatchConfig, setRoot func(any) error) error {
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	for i := 0; i != cfg.LoopLim; i++ {
		if i > 0 {
			<-ticker.C
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		theLog.Debug("loop", "iteration", i, "bytes", len(d))
		if err := decodeEach(bytes.NewReader(d), cfg.inFormat("-"), setRoot); err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
	}
	return nil
}
