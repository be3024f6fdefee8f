package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/jsonwatch/value"
	"github.com/signadot/jsonwatch/watch"

	"github.com/scott-cotton/cli"
)

var ErrScript = errors.New("invalid script")

type stepOp string

const (
	opSet    stepOp = "set"
	opDelete stepOp = "delete"
	opRoot   stepOp = "root"
	opPatch  stepOp = "patch"
	opMerge  stepOp = "merge"
)

type step struct {
	Op    stepOp
	Path  string
	Value any
	Patch []byte
}

func (s *step) String() string {
	if s.Path == "" {
		return string(s.Op)
	}
	return string(s.Op) + " " + s.Path
}

func replay(cfg *ReplayConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replay.Parse(cc, args)
	if err != nil {
		cfg.Replay.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: replay requires 2 args, got %v", cli.ErrUsage, args)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	script, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	steps, err := parseScript(script)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}

	root := watch.New(doc)
	p := &notifier{
		w:      cc.Out,
		f:      cfg.outFormat(),
		colors: cfg.colors(cc.Out),
		diff:   cfg.Diff,
	}
	if err := p.watch(root, cfg.Paths, cfg.When); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	failed := 0
	for i := range steps {
		s := &steps[i]
		err := runStep(root, s)
		if p.err != nil {
			return p.err
		}
		if err == nil {
			continue
		}
		if !cfg.Keep {
			return fmt.Errorf("step %d (%s): %w", i, s, err)
		}
		failed++
		theLog.Warn("step failed", "step", i, "op", s.Op, "path", s.Path, "error", err)
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(steps))
	}
	return nil
}

func runStep(root *watch.Node, s *step) error {
	n, err := root.Child(s.Path)
	if err != nil {
		return err
	}
	switch s.Op {
	case opSet:
		return n.Set(s.Value)
	case opDelete:
		return n.Delete()
	case opRoot:
		return n.SetRoot(s.Value)
	case opPatch:
		return n.Patch(s.Patch)
	case opMerge:
		return n.MergePatch(s.Patch)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrScript, s.Op)
	}
}

// parseScript reads a list of steps, each an object with fields op, path
// and, depending on op, value or patch.
func parseScript(v any) ([]step, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of steps, got %s", ErrScript, value.TypeOf(v))
	}
	res := make([]step, len(items))
	for i, item := range items {
		if err := parseStep(item, &res[i]); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return res, nil
}

func parseStep(v any, s *step) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: expected an object, got %s", ErrScript, value.TypeOf(v))
	}
	op, ok := m["op"].(string)
	if !ok {
		return fmt.Errorf("%w: missing op", ErrScript)
	}
	s.Op = stepOp(op)
	if p, ok := m["path"]; ok {
		path, ok := p.(string)
		if !ok {
			return fmt.Errorf("%w: path must be a string, got %s", ErrScript, value.TypeOf(p))
		}
		s.Path = path
	}
	switch s.Op {
	case opSet, opRoot:
		x, ok := m["value"]
		if !ok {
			return fmt.Errorf("%w: %s requires a value", ErrScript, s.Op)
		}
		s.Value = x
	case opDelete:
	case opPatch, opMerge:
		x, ok := m["patch"]
		if !ok {
			return fmt.Errorf("%w: %s requires a patch", ErrScript, s.Op)
		}
		if s.Op == opPatch && value.TypeOf(x) != value.ArrayType {
			return fmt.Errorf("%w: patch must be a list of operations, got %s", ErrScript, value.TypeOf(x))
		}
		d, err := json.Marshal(value.Plain(x))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScript, err)
		}
		s.Patch = d
	default:
		return fmt.Errorf("%w: unknown op %q", ErrScript, op)
	}
	return nil
}
