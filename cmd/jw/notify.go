package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/jsonwatch/format"
	"github.com/signadot/jsonwatch/libdiff"
	"github.com/signadot/jsonwatch/observe"
	"github.com/signadot/jsonwatch/value"
	"github.com/signadot/jsonwatch/watch"
)

// notifier prints the change notifications of watched nodes.
type notifier struct {
	w      io.Writer
	f      format.Format
	colors *libdiff.Colors
	diff   bool
	err    error
}

func (p *notifier) watch(root *watch.Node, paths []string, when string) error {
	if len(paths) == 0 {
		paths = []string{""}
	}
	for _, path := range paths {
		n, err := root.Child(path)
		if err != nil {
			return fmt.Errorf("cannot watch %q: %w", path, err)
		}
		h := p.handler(n)
		if when != "" {
			h, err = observe.Where(when, h)
			if err != nil {
				return fmt.Errorf("-when %q: %w", when, err)
			}
		}
		n.On(h)
		theLog.Debug("watching", "path", n.Path())
	}
	return nil
}

func (p *notifier) handler(n *watch.Node) observe.Handler {
	last := n.Value()
	path := n.Path()
	if path == "" {
		path = "."
	}
	return func(v any) {
		if p.err != nil {
			return
		}
		p.err = p.print(path, last, v)
		last = v
	}
}

func (p *notifier) print(path string, last, v any) error {
	if p.colors != nil {
		path = p.colors.Path(path)
	}
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", path, p.show(v)); err != nil {
		return err
	}
	if !p.diff {
		return nil
	}
	for _, c := range libdiff.Diff(last, v) {
		if _, err := fmt.Fprintf(p.w, "  %s\n", libdiff.FormatChange(c, p.colors)); err != nil {
			return err
		}
	}
	return nil
}

func (p *notifier) show(v any) string {
	if value.IsUndefined(v) {
		return "undefined"
	}
	d, err := format.Marshal(v, p.f, true)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes.TrimSpace(d))
}
