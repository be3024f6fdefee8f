// Package watch provides trees of watchers over a JSON-compatible value.
//
// # Overview
//
// A tree has one root Node holding a whole value. Any path into that value
// can be watched by resolving a child node, which tracks only the value at
// its path and emits ChangeEvent whenever that value changes by deep
// comparison:
//
//	root := watch.New(map[string]any{"prop": 0})
//	prop, _ := root.Child("prop")
//	prop.On(func(v any) { fmt.Println("prop is now", v) })
//	root.SetRoot(map[string]any{"prop": 5}) // prints: prop is now 5
//
// # Writes
//
// Writes at the root (SetRoot) flow down to every child whose value
// changed. Writes at a child (Set, Delete, Patch) flow up: each ancestor's
// value is rewritten with the child's key replaced, up to the root, and the
// result flows back down to every affected node, siblings and the writer
// included:
//
//	prop.Set(7) // root emits {"prop": 7}, then prop emits 7
//
// A node always emits before its descendants do for the same write.
//
// A write below a node whose value is not an object fails with
// ErrNonObjectParent, and leaves the whole tree untouched.
//
// # Paths
//
// Paths are dot separated keys: "a.b.c". A leading '<' resolves relative
// to the parent instead, and may be repeated:
//
//	b, _ := root.Child("a.b")
//	c, _ := b.Child("<c") // same node as root.Child("a.c")
//
// Nodes are created on first resolution and cached for the lifetime of the
// tree, so resolving a path twice yields the same node.
//
// Keys index arrays too: "list.0" watches the first element of "list".
// Writes, however, only go through objects.
//
// # Values
//
// Values are as described by package value. Nodes never share storage with
// their callers: Value and emitted values are copies, written values are
// copied on the way in. Decoding into a Node fails with ErrReadonly.
//
// # Thread Safety
//
// A tree is not safe for concurrent use. Notification handlers run
// synchronously during the write which triggered them, and may themselves
// write to the tree; such a nested write fully propagates before the
// handler returns.
//
// # Related Packages
//
//   - github.com/signadot/jsonwatch/value - value model, equality, cloning
//   - github.com/signadot/jsonwatch/observe - the notification capability
package watch
