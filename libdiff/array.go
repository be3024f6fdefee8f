package libdiff

import (
	"encoding/json"

	"github.com/signadot/jsonwatch/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray maps each element to a rune summarising it, diffs the rune
// sequences and recurses into elements whose summaries match. Composite
// elements summarise to their type, so changed objects in place are
// diffed field by field rather than replaced.
func diffArray(path string, from, to []any, res []Change) []Change {
	m := map[string]rune{}
	fromRunes := summarize(m, from)
	toRunes := summarize(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	// indices into res of deletions an insertion may pair with
	var pending []int
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, len(res))
				res = append(res, Change{Path: index(path, fi), Op: Delete, From: from[fi], To: value.Undefined})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					c := &res[pending[0]]
					pending = pending[1:]
					c.Op = Replace
					c.To = to[ti]
				} else {
					res = append(res, Change{Path: index(path, ti), Op: Insert, From: value.Undefined, To: to[ti]})
				}
				ti++
			}
		case diffpatch.DiffEqual:
			pending = nil
			for range n {
				res = diff(index(path, fi), from[fi], to[ti], res)
				fi++
				ti++
			}
		}
	}
	return res
}

func summarize(m map[string]rune, vs []any) []rune {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(v any) string {
	t := value.TypeOf(v)
	switch t {
	case value.ObjectType, value.ArrayType, value.NullType, value.UndefinedType:
		return t.String()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return t.String()
	}
	return t.String() + "-" + string(d)
}
