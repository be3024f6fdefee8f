package watch

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonwatch/debug"
	"github.com/signadot/jsonwatch/value"
)

// Child returns the node at path relative to n, creating and caching any
// missing nodes along the way. Requesting the same path twice returns the
// same node.
//
// A path is a sequence of keys joined by '.', e.g. "a.b.c". An empty path
// is n itself. Each leading '<' moves to the parent before resolving the
// remainder, so from node "a.b" the path "<c" is "a.c" and "<<d.e" is
// "d.e". Ascending past the root fails with ErrInvalidAscend.
func (n *Node) Child(path string) (*Node, error) {
	if debug.Resolve() {
		debug.Logf("resolve %q from %q\n", path, n.Path())
	}
	x := n
	for path != "" {
		if path[0] == x.cfg.marker {
			if x.parent == nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidAscend, path)
			}
			x = x.parent
			path = path[1:]
			continue
		}
		key, rest, _ := strings.Cut(path, string(x.cfg.sep))
		x = x.child(key)
		path = rest
	}
	return x, nil
}

func (n *Node) child(key string) *Node {
	if c, ok := n.children[key]; ok {
		return c
	}
	c := newNode(n, key, value.Clone(value.Lookup(n.value, key)), n.cfg)
	n.children[key] = c
	n.order = append(n.order, key)
	return c
}

// Path returns the keys from the root to n joined by the separator. The
// root's path is "".
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	if n.parent.parent == nil {
		return n.key
	}
	return n.parent.Path() + string(n.cfg.sep) + n.key
}

// Resolver resolves a path against a node supplied later.
type Resolver func(*Node) (*Node, error)

// Defer returns a Resolver for path, for use where the path is known
// before the node it is relative to.
func Defer(path string) Resolver {
	return func(n *Node) (*Node, error) {
		return n.Child(path)
	}
}
