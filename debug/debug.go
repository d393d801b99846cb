package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Handles bool
	Parse   bool
	Diff    bool
	Patch   bool
	Merge   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Handles = boolEnv("LVN_DEBUG_HANDLES")
	d.Parse = boolEnv("LVN_DEBUG_PARSE")
	d.Diff = boolEnv("LVN_DEBUG_DIFF")
	d.Patch = boolEnv("LVN_DEBUG_PATCH")
	d.Merge = boolEnv("LVN_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Handles() bool {
	return d.Handles
}
func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Merge() bool {
	return d.Merge
}
