package token

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/structext/ir"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"true", ir.FromBool(true)},
		{"false", ir.FromBool(false)},
		{"null", ir.Null()},
		{"42", ir.FromInt(42)},
		{"-7", ir.FromInt(-7)},
		{"007", ir.FromInt(7)},
		{"3.25", ir.FromFloat(3.25)},
		{"-0.5", ir.FromFloat(-0.5)},
		{"99999999999999999999", ir.FromFloat(1e20)},
		{"1.", ir.FromString("1.")},
		{".5", ir.FromString(".5")},
		{"1e3", ir.FromString("1e3")},
		{`"hello \"world\""`, ir.FromString(`hello "world"`)},
		{`"a\nb"`, ir.FromString("a\nb")},
		{`'single'`, ir.FromString("single")},
		{`'it''s'`, ir.FromString("it's")},
		{`"x" and "y"`, ir.FromString(`x" and "y`)},
		{`"`, ir.FromString(`"`)},
		{"[]", ir.EmptyArray()},
		{"{}", ir.EmptyObject()},
		{"True", ir.FromString("True")},
		{"value # not a comment", ir.FromString("value # not a comment")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Literal(tt.in)
			if !ir.Equal(got, tt.want) {
				t.Errorf("Literal(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLiteralIntOverflow(t *testing.T) {
	got := Literal("-99999999999999999999")
	if got.Float64 == nil || *got.Float64 != -1e20 || math.IsInf(*got.Float64, 0) {
		t.Errorf("unexpected %v", got)
	}
}

func TestSplitEntry(t *testing.T) {
	tests := []struct {
		line      string
		key, rest string
		err       error
	}{
		{"a: 1", "a", "1", nil},
		{"a:", "a", "", nil},
		{"a:   spaced  ", "a", "spaced", nil},
		{"url: http://x.y", "url", "http://x.y", nil},
		{"a:b", "a", "b", nil},
		{"a:b: c", "a:b", "c", nil},
		{`"a: b": 1`, "a: b", "1", nil},
		{`'it''s': x`, "it's", "x", nil},
		{`"q\"k":`, `q"k`, "", nil},
		{"key with space: v", "key with space", "v", nil},
		{": novalue", "", "", ir.ErrEmptyKey},
		{"no separator", "", "", ir.ErrNoSeparator},
		{`"quoted value"`, "", "", ir.ErrNoSeparator},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			k, r, err := SplitEntry(tt.line)
			if !errors.Is(err, tt.err) || (err != nil) != (tt.err != nil) {
				t.Fatalf("err = %v, expected %v", err, tt.err)
			}
			if err != nil {
				return
			}
			if k != tt.key || r != tt.rest {
				t.Errorf("got (%q, %q), expected (%q, %q)", k, r, tt.key, tt.rest)
			}
		})
	}
}

func TestSeqItem(t *testing.T) {
	tests := []struct {
		line string
		rest string
		ok   bool
	}{
		{"- a", "a", true},
		{"-", "", true},
		{"-   b  ", "b", true},
		{"- - 1", "- 1", true},
		{"-5", "", false},
		{"a", "", false},
	}
	for _, tt := range tests {
		rest, ok := SeqItem(tt.line)
		if ok != tt.ok || rest != tt.rest {
			t.Errorf("SeqItem(%q) = (%q, %t), expected (%q, %t)", tt.line, rest, ok, tt.rest, tt.ok)
		}
	}
}

func TestHasSeparator(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"a: 1", true},
		{"a:", true},
		{"http://x", false},
		{"a:b", false},
		{`"k:v"`, false},
		{`"k": v`, true},
		{"plain", false},
	}
	for _, tt := range tests {
		if got := HasSeparator(tt.line); got != tt.want {
			t.Errorf("HasSeparator(%q) = %t, expected %t", tt.line, got, tt.want)
		}
	}
}
