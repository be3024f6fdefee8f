// Package value provides the JSON-compatible value model watched by package
// watch.
//
// # Values
//
// A value is an `any` holding one of:
//
//   - Undefined: absence, e.g. a property which does not exist
//   - nil: JSON null
//   - bool, string
//   - a number: any Go integer or float type, or json.Number
//   - []any: an ordered sequence of values
//   - map[string]any: a mapping from string keys to values
//
// Anything else has OtherType and is outside the model; Equal and Clone
// handle it on a best effort basis only.
//
// Undefined and null are distinct: a mapping without key "a" and a mapping
// whose "a" is null are different values.
//
// # Equality and cloning
//
// Equal compares values structurally. Numbers compare by numeric value, so
// int(7), float64(7) and json.Number("7") are all equal. Clone produces a
// structurally equal copy sharing no mutable storage with its input:
//
//	c := value.Clone(v)
//	value.Equal(v, c) // always true
//
// # Keyed access
//
// Lookup reads the value under a key, With and Without produce rewritten
// copies of a mapping. These are the building blocks of propagation in
// package watch.
//
// # Related Packages
//
//   - github.com/signadot/jsonwatch/watch - watcher trees over values
//   - github.com/signadot/jsonwatch/format - decoding and encoding values
package value
