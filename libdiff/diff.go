package libdiff

import (
	"slices"
	"strconv"

	"github.com/signadot/jsonwatch/value"
)

// Separator joins keys in the paths of changes. Paths use the default
// syntax of package watch, so a change path may be passed to Node.Child.
const Separator = "."

// Diff returns the changes turning from into to, ordered by path with
// object keys sorted. It returns nil when from and to are Equal.
//
// Objects are compared key by key and arrays element by element along a
// longest common subsequence. In array changes, deletions and replacements
// carry the index in from and insertions the index in to.
func Diff(from, to any) []Change {
	return diff("", from, to, nil)
}

func diff(path string, from, to any, res []Change) []Change {
	if value.Equal(from, to) {
		return res
	}
	ft, tt := value.TypeOf(from), value.TypeOf(to)
	switch {
	case ft == value.UndefinedType:
		return append(res, Change{Path: path, Op: Insert, From: value.Undefined, To: to})
	case tt == value.UndefinedType:
		return append(res, Change{Path: path, Op: Delete, From: from, To: value.Undefined})
	case ft != tt:
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	case ft == value.ObjectType:
		return diffObject(path, from.(map[string]any), to.(map[string]any), res)
	case ft == value.ArrayType:
		return diffArray(path, from.([]any), to.([]any), res)
	default:
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	}
}

func diffObject(path string, from, to map[string]any, res []Change) []Change {
	keys := make([]string, 0, len(from)+len(to))
	for k := range from {
		keys = append(keys, k)
	}
	for k := range to {
		if _, ok := from[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		res = diff(join(path, k), value.Lookup(from, k), value.Lookup(to, k), res)
	}
	return res
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + Separator + key
}

func index(path string, i int) string {
	return join(path, strconv.Itoa(i))
}

// Count returns the number of changes of each op.
func Count(cs []Change) map[Op]int {
	res := map[Op]int{}
	for _, c := range cs {
		res[c.Op]++
	}
	return res
}
