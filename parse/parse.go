// Package parse reads block text, JSON and YAML into [ir.Node] trees.
//
// Every failure is an [*ir.FormatError] carrying the 1-based line of
// the offending input when it has one.
package parse

import (
	"bytes"
	"strings"

	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
)

// Parse parses d according to the format option, block text by
// default.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.BlockFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d, pOpts)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return fromBlockText(Lines(d), pOpts)
	}
}

// Lines splits d into lines for [FromBlockText].
func Lines(d []byte) []string {
	d = bytes.TrimSuffix(d, []byte{'\n'})
	if len(d) == 0 {
		return nil
	}
	return strings.Split(string(d), "\n")
}
