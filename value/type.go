package value

import (
	"encoding/json"
	"fmt"
)

type Type int

const (
	UndefinedType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
	OtherType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType: "undefined",
		NullType:      "null",
		BoolType:      "bool",
		NumberType:    "number",
		StringType:    "string",
		ArrayType:     "array",
		ObjectType:    "object",
		OtherType:     "other",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"undefined": UndefinedType,
		"null":      NullType,
		"bool":      BoolType,
		"number":    NumberType,
		"string":    StringType,
		"array":     ArrayType,
		"object":    ObjectType,
		"other":     OtherType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		UndefinedType,
		NullType,
		BoolType,
		NumberType,
		StringType,
		ArrayType,
		ObjectType,
		OtherType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}

// TypeOf classifies v.
func TypeOf(v any) Type {
	switch v.(type) {
	case undefined:
		return UndefinedType
	case nil:
		return NullType
	case bool:
		return BoolType
	case string:
		return StringType
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return NumberType
	case []any:
		return ArrayType
	case map[string]any:
		return ObjectType
	}
	return OtherType
}
