// Package debug holds environment controlled debugging switches and
// the logger shared by the structext packages and hosts.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("STX_DEBUG_PARSE")
	d.Encode = boolEnv("STX_DEBUG_ENCODE")
	d.Convert = boolEnv("STX_DEBUG_CONVERT")
	if d.Parse || d.Encode || d.Convert {
		SetVerbose(true)
	}
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
func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}
