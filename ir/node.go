package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func EmptyObject() *Node {
	return &Node{
		Type:   ObjectType,
		Fields: []string{},
		Values: []*Node{},
	}
}

func EmptyArray() *Node {
	return &Node{
		Type:   ArrayType,
		Values: []*Node{},
	}
}

func FromSlice(ys []*Node) *Node {
	res := EmptyArray()
	res.Values = append(res.Values, ys...)
	return res
}

// KeyVal is one mapping entry.
type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a mapping in the order of kvs.  A repeated key
// replaces the earlier value in the earlier key's position.
func FromKeyVals(kvs []KeyVal) *Node {
	b := NewMappingBuilder()
	for _, kv := range kvs {
		b.Set(kv.Key, kv.Val)
	}
	return b.Node()
}

// FromMap builds a mapping with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := EmptyObject()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

// Set sets key to val in the mapping y.  If key is already present its
// value is replaced in place, otherwise the entry is appended.  Set
// scans the fields; use a MappingBuilder to build whole mappings.
func (y *Node) Set(key string, val *Node) {
	if y.Type != ObjectType {
		panic("Set on " + y.Type.String())
	}
	if val == nil {
		val = Null()
	}
	if i := slices.Index(y.Fields, key); i >= 0 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// Append adds val to the end of the sequence y.
func (y *Node) Append(val *Node) {
	if y.Type != ArrayType {
		panic("Append on " + y.Type.String())
	}
	if val == nil {
		val = Null()
	}
	y.Values = append(y.Values, val)
}

// Get returns the value of field in the mapping y, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := slices.Index(y.Fields, field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of entries of a container, or 0.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	}
	return 0
}

// IsEmptyContainer reports whether y is a mapping or sequence without
// entries.
func (y *Node) IsEmptyContainer() bool {
	return !y.Type.IsLeaf() && len(y.Values) == 0
}

// MappingBuilder builds a mapping entry by entry with the duplicate key
// rule of Set, in constant time per entry.
type MappingBuilder struct {
	node  *Node
	index map[string]int
}

func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{node: EmptyObject(), index: map[string]int{}}
}

// Set appends key, or replaces its value in place if it was set before.
func (b *MappingBuilder) Set(key string, val *Node) {
	if val == nil {
		val = Null()
	}
	if i, ok := b.index[key]; ok {
		b.node.Values[i] = val
		return
	}
	b.index[key] = len(b.node.Fields)
	b.node.Fields = append(b.node.Fields, key)
	b.node.Values = append(b.node.Values, val)
}

// Node returns the mapping built so far.
func (b *MappingBuilder) Node() *Node {
	return b.node
}
