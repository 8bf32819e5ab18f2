// Package debug provides env-gated debug logging to stderr. All gates are
// off unless the corresponding JDOM_DEBUG_* variable is set to a true
// value, so library code paths stay silent by default.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Query bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("JDOM_DEBUG_PATCH")
	d.Query = boolEnv("JDOM_DEBUG_QUERY")
	d.Diff = boolEnv("JDOM_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
