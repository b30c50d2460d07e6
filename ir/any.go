package ir

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// FromAny converts an in-memory Go value into a Node.
//
// Supported are nil, booleans, strings, all integer and float kinds,
// json.Number, time.Time, encoding.TextMarshaler, maps with string
// keys (sorted), yaml.MapSlice (ordered), []KeyVal (ordered), slices,
// arrays, pointers, interfaces and structs (exported fields, honoring
// json tag names, "-" and omitempty).  Cyclic values are an error.
func FromAny(v any) (*Node, error) {
	c := &anyConv{seen: map[uintptr]bool{}}
	return c.conv(reflect.ValueOf(v))
}

type anyConv struct {
	seen map[uintptr]bool
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	jsonNumberType    = reflect.TypeOf(json.Number(""))
	mapSliceType      = reflect.TypeOf(yaml.MapSlice{})
	keyValsType       = reflect.TypeOf([]KeyVal{})
	nodeType          = reflect.TypeOf(&Node{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func (c *anyConv) enter(v reflect.Value) error {
	p := v.Pointer()
	if p == 0 {
		return nil
	}
	if c.seen[p] {
		return fmt.Errorf("cannot convert cyclic value of type %s", v.Type())
	}
	c.seen[p] = true
	return nil
}

func (c *anyConv) leave(v reflect.Value) {
	delete(c.seen, v.Pointer())
}

func (c *anyConv) conv(v reflect.Value) (*Node, error) {
	if !v.IsValid() {
		return Null(), nil
	}
	switch v.Type() {
	case nodeType:
		if v.IsNil() {
			return Null(), nil
		}
		return v.Interface().(*Node).Clone(), nil
	case timeType:
		return FromString(v.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	case jsonNumberType:
		return FromNumberString(v.String())
	case mapSliceType:
		return c.mapSlice(v.Interface().(yaml.MapSlice))
	case keyValsType:
		return c.keyVals(v.Interface().([]KeyVal))
	}
	if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface && v.Type().Implements(textMarshalerType) {
		d, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return FromString(string(d)), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return Null(), nil
		}
		if v.Kind() == reflect.Pointer {
			if err := c.enter(v); err != nil {
				return nil, err
			}
			defer c.leave(v)
		}
		return c.conv(v.Elem())
	case reflect.Bool:
		return FromBool(v.Bool()), nil
	case reflect.String:
		return FromString(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return FromFloat(float64(u)), nil
		}
		return FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(v.Float()), nil
	case reflect.Slice:
		if v.IsNil() {
			return Null(), nil
		}
		if err := c.enter(v); err != nil {
			return nil, err
		}
		defer c.leave(v)
		return c.seq(v)
	case reflect.Array:
		return c.seq(v)
	case reflect.Map:
		if v.IsNil() {
			return Null(), nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot convert map with %s keys", v.Type().Key())
		}
		if err := c.enter(v); err != nil {
			return nil, err
		}
		defer c.leave(v)
		m := make(map[string]*Node, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			val, err := c.conv(iter.Value())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = val
		}
		return FromMap(m), nil
	case reflect.Struct:
		return c.structure(v)
	}
	return nil, fmt.Errorf("cannot convert value of type %s", v.Type())
}

func (c *anyConv) seq(v reflect.Value) (*Node, error) {
	res := EmptyArray()
	for i := 0; i < v.Len(); i++ {
		elt, err := c.conv(v.Index(i))
		if err != nil {
			return nil, err
		}
		res.Append(elt)
	}
	return res, nil
}

func (c *anyConv) mapSlice(ms yaml.MapSlice) (*Node, error) {
	res := NewMappingBuilder()
	for _, item := range ms {
		val, err := c.conv(reflect.ValueOf(item.Value))
		if err != nil {
			return nil, err
		}
		res.Set(keyString(item.Key), val)
	}
	return res.Node(), nil
}

func (c *anyConv) keyVals(kvs []KeyVal) (*Node, error) {
	res := NewMappingBuilder()
	for _, kv := range kvs {
		val, err := c.conv(reflect.ValueOf(kv.Val))
		if err != nil {
			return nil, err
		}
		res.Set(kv.Key, val)
	}
	return res.Node(), nil
}

func (c *anyConv) structure(v reflect.Value) (*Node, error) {
	res := NewMappingBuilder()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		omitEmpty := false
		if tag, ok := sf.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}
		fv := v.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		val, err := c.conv(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		res.Set(name, val)
	}
	return res.Node(), nil
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}

// FromNumberString returns a number node for a JSON number literal:
// an Int64 when it is an integer that fits, a Float64 otherwise.
func FromNumberString(s string) (*Node, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return FromFloat(f), nil
}

// ToAny converts a node into plain Go values: nil, bool, string, int64,
// float64, []any and map[string]any.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// ToMapSlice converts a node like ToAny but keeps mapping order by
// producing yaml.MapSlice for mappings.
func ToMapSlice(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToMapSlice(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToMapSlice(y.Values[i])}
		}
		return res
	}
	return ToAny(y)
}
