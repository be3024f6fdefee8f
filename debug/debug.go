package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Emit      bool
	Propagate bool
	Resolve   bool
	Patch     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Emit = boolEnv("JW_DEBUG_EMIT")
	d.Propagate = boolEnv("JW_DEBUG_PROPAGATE")
	d.Resolve = boolEnv("JW_DEBUG_RESOLVE")
	d.Patch = boolEnv("JW_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Emit() bool {
	return d.Emit
}
func Propagate() bool {
	return d.Propagate
}
func Resolve() bool {
	return d.Resolve
}
func Patch() bool {
	return d.Patch
}
