package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Resolve bool
	Storage bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("INV_DEBUG_PARSE")
	d.Resolve = boolEnv("INV_DEBUG_RESOLVE")
	d.Storage = boolEnv("INV_DEBUG_STORAGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Storage() bool {
	return d.Storage
}
