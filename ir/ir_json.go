package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type    Type     `json:"type"`
	Fields  []string `json:"fields,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

// MarshalJSON encodes the node's own tagged structure, not the JSON
// document it represents.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.String = tmp.String
	y.Bool = tmp.Bool
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("mapping has %d fields and %d values", len(y.Fields), len(y.Values))
		}
		if y.Fields == nil {
			y.Fields = []string{}
		}
		if y.Values == nil {
			y.Values = []*Node{}
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("sequence with fields")
		}
		if y.Values == nil {
			y.Values = []*Node{}
		}
	case NumberType:
		if (y.Int64 == nil) == (y.Float64 == nil) {
			return fmt.Errorf("number must have exactly one of int or float")
		}
	}
	return nil
}
