package libdiff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/jsonwatch/value"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors holds the functions used to render printed diffs. A nil *Colors
// renders without color.
type Colors struct {
	Insert  func(a ...any) string
	Delete  func(a ...any) string
	Replace func(a ...any) string
	Path    func(a ...any) string
}

// NewColors returns colors which are applied whether or not the output is
// a terminal.
func NewColors() *Colors {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return &Colors{
		Insert:  mk(color.FgGreen),
		Delete:  mk(color.FgRed),
		Replace: mk(color.FgYellow),
		Path:    mk(color.FgCyan, color.Bold),
	}
}

func (c *Colors) op(o Op) func(a ...any) string {
	if c == nil {
		return fmt.Sprint
	}
	switch o {
	case Insert:
		return c.Insert
	case Delete:
		return c.Delete
	default:
		return c.Replace
	}
}

func (c *Colors) path(p string) string {
	if c == nil {
		return p
	}
	return c.Path(p)
}

// Format renders one change per line.
func Format(cs []Change, c *Colors) string {
	var b strings.Builder
	for _, ch := range cs {
		b.WriteString(FormatChange(ch, c))
		b.WriteByte('\n')
	}
	return b.String()
}

func FormatChange(ch Change, c *Colors) string {
	paint := c.op(ch.Op)
	sym := paint(ch.Op.Symbol())
	p := c.path(showPath(ch.Path))
	switch ch.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", sym, p, paint(compact(ch.To)))
	case Delete:
		return fmt.Sprintf("%s %s: %s", sym, p, paint(compact(ch.From)))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", sym, p, c.op(Delete)(compact(ch.From)), c.op(Insert)(compact(ch.To)))
	}
}

// Lines returns a line oriented diff of the indented JSON encodings of
// from and to. Lines only in from are prefixed with "-", lines only in to
// with "+" and common lines with a space. It returns "" when the
// encodings are identical.
func Lines(from, to any, c *Colors) (string, error) {
	a, err := indent(from)
	if err != nil {
		return "", err
	}
	b, err := indent(to)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+", c.op(Insert)
		case diffpatch.DiffDelete:
			prefix, paint = "-", c.op(Delete)
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(paint(prefix + strings.TrimSuffix(line, "\n")))
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func indent(v any) (string, error) {
	if value.IsUndefined(v) {
		return "", nil
	}
	d, err := json.MarshalIndent(value.Plain(v), "", "  ")
	if err != nil {
		return "", err
	}
	return string(d) + "\n", nil
}
