package parse

import (
	"bytes"
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/signadot/structext/ir"
)

func parseYAML(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.EmptyObject(), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, yamlError(err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, ir.NewFormatError(0, ir.ErrInvalidYAML, "invalid YAML: %s", err.Error())
	}
	return node, nil
}

func yamlError(err error) error {
	var yerr yaml.Error
	if errors.As(err, &yerr) {
		line := 0
		if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
			line = tk.Position.Line
		}
		return ir.NewFormatError(line, ir.ErrInvalidYAML, "invalid YAML: %s", yerr.GetMessage())
	}
	return ir.NewFormatError(0, ir.ErrInvalidYAML, "invalid YAML: %s", err.Error())
}
