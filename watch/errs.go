package watch

import "errors"

var (
	// ErrReadonly is returned when a node's value is assigned directly,
	// e.g. by decoding into the node, instead of through Set or Delete.
	ErrReadonly = errors.New("readonly value")

	// ErrNonObjectParent is returned by a write below a node which does
	// not currently hold an object.
	ErrNonObjectParent = errors.New("parent is not an object")

	// ErrInvalidAscend is returned when a path ascends past the root.
	ErrInvalidAscend = errors.New("cannot ascend past root")

	ErrNotRoot = errors.New("not a root node")
	ErrPatch   = errors.New("patch error")
)
