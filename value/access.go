package value

import (
	"fmt"
	"strconv"
)

// Lookup returns the value of v under key.
//
// For a mapping this is v[key], or Undefined if key is absent. For a
// sequence, key may be a decimal index in range. In any other case the
// result is Undefined.
func Lookup(v any, key string) any {
	switch x := v.(type) {
	case map[string]any:
		if e, ok := x[key]; ok {
			return e
		}
	case []any:
		if i, ok := Index(key); ok && i < len(x) {
			return x[i]
		}
	}
	return Undefined
}

// Index parses key as a canonical decimal sequence index: no sign and no
// leading zeros.
func Index(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return i, true
}

// With returns a deep copy of the mapping v with key set to x. x itself is
// stored without copying.
func With(v any, key string, x any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: cannot set %q on %s", ErrNotObject, key, TypeOf(v))
	}
	res := cloneObject(m)
	res[key] = x
	return res, nil
}

// Without returns a deep copy of the mapping v with key removed. Removing a
// key which is not present yields a value equal to v.
func Without(v any, key string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: cannot delete %q from %s", ErrNotObject, key, TypeOf(v))
	}
	res := cloneObject(m)
	delete(res, key)
	return res, nil
}
