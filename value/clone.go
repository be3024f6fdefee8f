package value

// Clone returns a deep copy of v. Mappings and sequences are copied
// recursively, everything else is immutable and returned as is.
func Clone(v any) any {
	switch x := v.(type) {
	case []any:
		if x == nil {
			return x
		}
		return cloneArray(x)
	case map[string]any:
		if x == nil {
			return x
		}
		return cloneObject(x)
	}
	return v
}

func cloneArray(a []any) []any {
	res := make([]any, len(a))
	for i, e := range a {
		res[i] = Clone(e)
	}
	return res
}

func cloneObject(m map[string]any) map[string]any {
	res := make(map[string]any, len(m))
	for k, e := range m {
		res[k] = Clone(e)
	}
	return res
}
