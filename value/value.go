package value

type undefined struct{}

func (undefined) String() string { return "undefined" }

// MarshalJSON encodes Undefined as null, matching what Plain does with
// Undefined outside of a mapping.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Undefined is the value of something which does not exist.
var Undefined any = undefined{}

func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
