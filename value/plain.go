package value

// Plain returns a copy of v with Undefined removed the way a JSON encoder
// would: mapping entries holding Undefined are dropped, and Undefined
// elsewhere becomes null.
func Plain(v any) any {
	switch x := v.(type) {
	case undefined:
		return nil
	case []any:
		if x == nil {
			return x
		}
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Plain(e)
		}
		return res
	case map[string]any:
		if x == nil {
			return x
		}
		res := make(map[string]any, len(x))
		for k, e := range x {
			if IsUndefined(e) {
				continue
			}
			res[k] = Plain(e)
		}
		return res
	}
	return v
}
