package watch

import (
	"slices"

	"github.com/signadot/jsonwatch/observe"
	"github.com/signadot/jsonwatch/value"
)

// ChangeEvent is emitted with the new value whenever a node's value
// changes.
const ChangeEvent = "change"

// Node watches the value at one path of a tree.
//
// A Node owns its value: Value returns a copy and all writes go through
// SetRoot, Set, Delete or Patch.
type Node struct {
	parent *Node
	key    string
	value  any

	children map[string]*Node
	order    []string

	obs observe.Observable
	cfg *config
}

// New returns the root of a new tree holding a copy of v.
func New(v any, opts ...Option) *Node {
	cfg := newConfig(opts)
	return newNode(nil, "", value.Clone(v), cfg)
}

func newNode(parent *Node, key string, v any, cfg *config) *Node {
	return &Node{
		parent:   parent,
		key:      key,
		value:    v,
		children: map[string]*Node{},
		obs:      cfg.newObservable(),
		cfg:      cfg,
	}
}

// Value returns a deep copy of the node's current value.
func (n *Node) Value() any {
	return value.Clone(n.value)
}

func (n *Node) Type() value.Type {
	return value.TypeOf(n.value)
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Key returns the key of n in its parent's value, "" for a root.
func (n *Node) Key() string {
	return n.key
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the keys of the child nodes created so far, in
// creation order.
func (n *Node) Children() []string {
	return slices.Clone(n.order)
}

// On subscribes h to changes of n.
func (n *Node) On(h observe.Handler) observe.Subscription {
	return n.Subscribe(ChangeEvent, h)
}

// Subscribe subscribes h to event on n. Each handler is passed its own
// copy of the emitted value.
func (n *Node) Subscribe(event string, h observe.Handler) observe.Subscription {
	if h == nil {
		return observe.Subscription{}
	}
	return n.obs.Subscribe(event, func(v any) {
		h(value.Clone(v))
	})
}

func (n *Node) UnsubscribeAll(events ...string) {
	n.obs.UnsubscribeAll(events...)
}

func (n *Node) Observable() observe.Observable {
	return n.obs
}
