package ir

import (
	"strconv"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"Object Key Order Matters",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
			// antisymmetry
			if back := Compare(tt.b, tt.a); back != -tt.expected {
				t.Errorf("Compare(b, a) = %d, expected %d", back, -tt.expected)
			}
		})
	}
}

func TestDuplicateKeysLastWins(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	if len(node.Fields) != 2 {
		t.Fatalf("got %d fields, expected 2", len(node.Fields))
	}
	if node.Fields[0] != "a" || node.Fields[1] != "b" {
		t.Errorf("unexpected key order %v", node.Fields)
	}
	if got := *node.Get("a").Int64; got != 3 {
		t.Errorf("a = %d, expected 3", got)
	}
}

func TestMappingBuilder(t *testing.T) {
	const n = 50000
	b := NewMappingBuilder()
	for i := range n {
		b.Set(strconv.Itoa(i), FromInt(int64(i)))
	}
	for i := 0; i < n; i += 2 {
		b.Set(strconv.Itoa(i), FromInt(-1))
	}
	b.Set("nil", nil)
	node := b.Node()
	if node.Len() != n+1 {
		t.Fatalf("got %d fields, expected %d", node.Len(), n+1)
	}
	for i := range n {
		if node.Fields[i] != strconv.Itoa(i) {
			t.Fatalf("field %d is %q", i, node.Fields[i])
		}
		want := int64(i)
		if i%2 == 0 {
			want = -1
		}
		if got := *node.Values[i].Int64; got != want {
			t.Fatalf("field %d = %d, expected %d", i, got, want)
		}
	}
	if node.Values[n].Type != NullType {
		t.Errorf("nil value stored as %s", node.Values[n].Type)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "n", Val: FromFloat(1.5)},
		{Key: "s", Val: FromSlice([]*Node{FromString("x"), Null()})},
	})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	*c.Get("n").Float64 = 2.5
	c.Get("s").Values[0].String = "y"
	if *orig.Get("n").Float64 != 1.5 || orig.Get("s").Values[0].String != "x" {
		t.Errorf("clone shares state with its source")
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{nil, false},
		{Null(), false},
		{FromBool(true), true},
		{FromInt(0), false},
		{FromFloat(0.1), true},
		{FromString(""), false},
		{FromString("x"), true},
		{EmptyArray(), false},
		{EmptyObject(), false},
		{FromSlice([]*Node{Null()}), true},
	}
	for i, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("%d: Truth = %t, expected %t", i, got, tt.want)
		}
	}
}
