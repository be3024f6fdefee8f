package value

import "errors"

var (
	ErrNotObject = errors.New("not an object")
)
