// Package debug provides env-gated diagnostics for the library.
// Subsystems are switched on with COMPOUND_DEBUG_* variables, e.g.
// COMPOUND_DEBUG_BIND=1.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Bind  bool
	Diff  bool
	Patch bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Bind = boolEnv("COMPOUND_DEBUG_BIND")
	d.Diff = boolEnv("COMPOUND_DEBUG_DIFF")
	d.Patch = boolEnv("COMPOUND_DEBUG_PATCH")
	d.Match = boolEnv("COMPOUND_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Bind() bool {
	return d.Bind
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
