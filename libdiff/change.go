package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/jsonwatch/value"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

var opNames = map[Op]string{
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
}

func (o Op) String() string {
	s, ok := opNames[o]
	if !ok {
		return fmt.Sprintf("<op %d>", int(o))
	}
	return s
}

func (o Op) MarshalText() ([]byte, error) {
	s, ok := opNames[o]
	if !ok {
		return nil, fmt.Errorf("%d is not an op", int(o))
	}
	return []byte(s), nil
}

// Symbol is the one character prefix used when printing a change.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is a difference at one path. From is undefined for an Insert and
// To is undefined for a Delete.
type Change struct {
	Path string
	Op   Op
	From any
	To   any
}

func (c Change) String() string {
	return FormatChange(c, nil)
}

// Plain returns c as a JSON-like object suitable for encoding.
func (c Change) Plain() map[string]any {
	res := map[string]any{
		"path": c.Path,
		"op":   c.Op.String(),
	}
	if !value.IsUndefined(c.From) {
		res["from"] = value.Plain(c.From)
	}
	if !value.IsUndefined(c.To) {
		res["to"] = value.Plain(c.To)
	}
	return res
}

func showPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}

func compact(v any) string {
	if value.IsUndefined(v) {
		return "undefined"
	}
	d, err := json.Marshal(value.Plain(v))
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
