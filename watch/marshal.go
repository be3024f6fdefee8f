package watch

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/jsonwatch/value"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes the node's value. Undefined entries are omitted and
// an undefined value encodes as null.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(value.Plain(n.value))
}

// UnmarshalJSON always fails with ErrReadonly: a node's value can only be
// changed through its write methods.
func (n *Node) UnmarshalJSON([]byte) error {
	return n.readonly()
}

func (n *Node) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(value.Plain(n.value))
}

// UnmarshalYAML always fails with ErrReadonly.
func (n *Node) UnmarshalYAML([]byte) error {
	return n.readonly()
}

func (n *Node) readonly() error {
	return fmt.Errorf("%w: assign to %q, use Set or Delete", ErrReadonly, n.Path())
}
