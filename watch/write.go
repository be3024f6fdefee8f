package watch

import (
	"fmt"

	"github.com/signadot/jsonwatch/debug"
	"github.com/signadot/jsonwatch/value"
)

// SetRoot replaces the value of the root n with a copy of v. If the new
// value differs from the old one, n emits ChangeEvent and then updates
// every child, recursively, each of which emits only if its own value
// changed. Ancestors always emit before their descendants.
func (n *Node) SetRoot(v any) error {
	if n.parent != nil {
		return fmt.Errorf("%w: %q", ErrNotRoot, n.Path())
	}
	n.update(value.Clone(v))
	return nil
}

// Set replaces the value of n with a copy of v. On a root this is SetRoot.
// Otherwise the parent's value is rewritten with n's key set to v, and so
// on up to the root, from which the change propagates back down.
//
// Every ancestor of n must hold an object, otherwise Set returns
// ErrNonObjectParent and nothing in the tree changes.
func (n *Node) Set(v any) error {
	if n.parent == nil {
		n.update(value.Clone(v))
		return nil
	}
	return n.parent.setKey(n.key, value.Clone(v))
}

// Delete removes n's key from its parent's value, propagating like Set.
// Deleting an absent key changes nothing. On a root Delete sets the value
// to value.Undefined.
func (n *Node) Delete() error {
	if n.parent == nil {
		n.update(value.Undefined)
		return nil
	}
	return n.parent.deleteKey(n.key)
}

func (n *Node) setKey(key string, v any) error {
	return n.write(func(cur any) (any, error) {
		return value.With(cur, key, v)
	})
}

func (n *Node) deleteKey(key string) error {
	return n.write(func(cur any) (any, error) {
		return value.Without(cur, key)
	})
}

// write computes the next value of n with edit and rebuilds every ancestor
// from the root's current value. During a fan-out, nodes not yet reached
// hold stale values, so their own values are not used. No node is
// modified until the root is reached, so a failing edit anywhere leaves
// the tree untouched.
func (n *Node) write(edit func(any) (any, error)) error {
	// chain[0] is n, chain[len(chain)-1] the root
	var chain []*Node
	for x := n; x != nil; x = x.parent {
		chain = append(chain, x)
	}
	root := chain[len(chain)-1]
	cur := make([]any, len(chain))
	cur[len(chain)-1] = root.value
	for i := len(chain) - 2; i >= 0; i-- {
		cur[i] = value.Lookup(cur[i+1], chain[i].key)
	}
	next, err := edit(cur[0])
	if err != nil {
		return fmt.Errorf("%w at %q: %w", ErrNonObjectParent, n.Path(), err)
	}
	for i := 1; i < len(chain); i++ {
		if debug.Propagate() {
			debug.Logf("propagate up %q: %v\n", chain[i-1].Path(), next)
		}
		next, err = value.With(cur[i], chain[i-1].key, next)
		if err != nil {
			return fmt.Errorf("%w at %q: %w", ErrNonObjectParent, chain[i].Path(), err)
		}
	}
	root.update(next)
	return nil
}

// update stores v, which n takes ownership of, and on change notifies and
// descends into the children.
func (n *Node) update(v any) {
	old := n.value
	n.value = v
	if value.Equal(old, v) {
		return
	}
	if debug.Emit() {
		debug.Logf("emit %q: %v\n", n.Path(), v)
	}
	n.obs.Emit(ChangeEvent, value.Clone(v))

	// n.value rather than v: a handler may have written since.
	order := n.order
	for _, key := range order {
		n.children[key].update(value.Clone(value.Lookup(n.value, key)))
	}
}
