package value

import "reflect"

// Equal reports whether a and b are structurally equal.
//
// Values of different types are never equal; in particular Undefined is
// not equal to null. Mappings are equal when they have the same number of
// keys and every key of a maps to a value equal to b's value under that key,
// where a key missing from b reads as Undefined. Numbers are equal when
// their values are, exactly, whatever their Go types.
func Equal(a, b any) bool {
	ta, tb := TypeOf(a), TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta {
	case UndefinedType, NullType:
		return true
	case BoolType:
		return a.(bool) == b.(bool)
	case StringType:
		return a.(string) == b.(string)
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		return equalArrays(a.([]any), b.([]any))
	case ObjectType:
		return equalObjects(a.(map[string]any), b.(map[string]any))
	}
	return reflect.DeepEqual(a, b)
}

func equalArrays(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalObjects(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		if !Equal(av, Lookup(b, k)) {
			return false
		}
	}
	return true
}
