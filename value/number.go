package value

import (
	"encoding/json"
	"math"
)

type numKind int

const (
	intNum numKind = iota
	uintNum
	floatNum
)

// number is a numeric value lifted out of its Go representation.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func toNumber(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return number{kind: intNum, i: int64(x)}, true
	case int8:
		return number{kind: intNum, i: int64(x)}, true
	case int16:
		return number{kind: intNum, i: int64(x)}, true
	case int32:
		return number{kind: intNum, i: int64(x)}, true
	case int64:
		return number{kind: intNum, i: x}, true
	case uint:
		return number{kind: uintNum, u: uint64(x)}, true
	case uint8:
		return number{kind: uintNum, u: uint64(x)}, true
	case uint16:
		return number{kind: uintNum, u: uint64(x)}, true
	case uint32:
		return number{kind: uintNum, u: uint64(x)}, true
	case uint64:
		return number{kind: uintNum, u: x}, true
	case float32:
		return number{kind: floatNum, f: float64(x)}, true
	case float64:
		return number{kind: floatNum, f: x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return number{kind: intNum, i: i}, true
		}
		if f, err := x.Float64(); err == nil {
			return number{kind: floatNum, f: f}, true
		}
	}
	return number{}, false
}

func (n number) equal(o number) bool {
	switch {
	case n.kind == floatNum && o.kind == floatNum:
		// NaN compares unequal here, itself included.
		return n.f == o.f
	case o.kind == floatNum:
		return o.equal(n)
	case n.kind == floatNum:
		return n.equalInteger(o)
	case n.kind == intNum && o.kind == intNum:
		return n.i == o.i
	case n.kind == uintNum && o.kind == uintNum:
		return n.u == o.u
	case n.kind == intNum:
		return n.i >= 0 && uint64(n.i) == o.u
	default:
		return o.i >= 0 && uint64(o.i) == n.u
	}
}

// equalInteger compares the float n with the integer o exactly, without
// rounding o to a float64.
func (n number) equalInteger(o number) bool {
	f := n.f
	if f != math.Trunc(f) {
		// fractional, NaN or infinite
		return false
	}
	if o.kind == uintNum {
		return f >= 0 && f < two64 && uint64(f) == o.u
	}
	return f >= -two63 && f < two63 && int64(f) == o.i
}

const (
	two63 = float64(1 << 63)
	two64 = float64(1<<63) * 2
)

func equalNumbers(a, b any) bool {
	na, okA := toNumber(a)
	nb, okB := toNumber(b)
	if okA && okB {
		return na.equal(nb)
	}
	// malformed json.Number values only equal themselves textually
	sa, okA := a.(json.Number)
	sb, okB := b.(json.Number)
	return okA && okB && sa == sb
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	n, ok := toNumber(v)
	return ok && n.kind == floatNum && math.IsNaN(n.f)
}
