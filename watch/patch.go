package watch

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/jsonwatch/debug"
	"github.com/signadot/jsonwatch/value"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 JSON Patch doc to the value of n and writes
// the result with Set. Paths in the patch are relative to n.
func (n *Node) Patch(doc []byte) error {
	ops, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return n.patchWith(func(cur []byte) ([]byte, error) {
		return ops.Apply(cur)
	})
}

// MergePatch applies the RFC 7386 JSON Merge Patch doc to the value of n
// and writes the result with Set.
func (n *Node) MergePatch(doc []byte) error {
	return n.patchWith(func(cur []byte) ([]byte, error) {
		return jsonpatch.MergePatch(cur, doc)
	})
}

func (n *Node) patchWith(apply func([]byte) ([]byte, error)) error {
	cur, err := json.Marshal(value.Plain(n.value))
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", ErrPatch, n.Path(), err)
	}
	out, err := apply(cur)
	if err != nil {
		return fmt.Errorf("%w: applying to %q: %w", ErrPatch, n.Path(), err)
	}
	var next any
	if err := json.Unmarshal(out, &next); err != nil {
		return fmt.Errorf("%w: decoding result: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch %q: %s -> %s\n", n.Path(), cur, out)
	}
	return n.Set(next)
}
