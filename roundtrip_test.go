package structext

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/libdiff"
	"github.com/signadot/structext/parse"
)

func TestJSONRoundTripProperty(t *testing.T) {
	docs := []string{
		`{"a": 1, "b": [1,2,3]}`,
		`{"empty": {}, "list": [], "nested": [[], [{}], [[1]]]}`,
		`{"s": "", "t": " x ", "u": "a: b", "v": "line\nbreak", "w": "\"q\"", "x": "'", "y": "-", "z": "#"}`,
		`{"keys": {"": 1, "a:b": 2, "- c": 3, "# d": 4, "[e]": 5, "\"f\"": 6}}`,
		`{"lookalikes": ["true", "null", "12", "-3", "4.5", "[]", "{}"]}`,
		`[null, true, false, 0, -17, "x", {"k": [null]}]`,
		`[1, null]`,
		`{"a": [null]}`,
		`{"a": null, "b": [[null], {"c": null}]}`,
		`"just a string"`,
		`42`,
		`{}`,
		`[]`,
		`{"dup": 1, "dup": 2}`,
		`{"unicode": "∞ ü \u0001 \t"}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			rt, err := CheckJSONRoundTrip(doc)
			if err != nil {
				t.Fatal(err)
			}
			if !rt.Equal {
				t.Errorf("round trip differs\nblock:\n%s\njson:\n%s\npatch: %s", rt.Block, rt.JSON, rt.Patch)
			}
		})
	}
}

func TestJSONRoundTripFloatLoss(t *testing.T) {
	rt, err := CheckJSONRoundTrip(`{"f": 1.0, "g": 2.5}`)
	if err != nil {
		t.Fatal(err)
	}
	// 1.0 comes back as 1 which is the same JSON value
	if !rt.Equal {
		t.Errorf("expected equal, got patch %s", rt.Patch)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	canonical := "a: 1\nb:\n  - x\n  - k: v\n    l:\n      - []\nc: \"a: b\"\n"
	rt, err := CheckRoundTrip(canonical)
	if err != nil {
		t.Fatal(err)
	}
	if !rt.Idempotent {
		t.Errorf("canonical text changed:\n%s", libdiff.Format(rt.Diff, -1))
	}
	if len(rt.Changes) != 0 {
		t.Errorf("unexpected changes %v", rt.Changes)
	}

	rt, err = CheckRoundTrip("a:    1\n# comment\nb:\n- 'x'\n")
	if err != nil {
		t.Fatal(err)
	}
	if rt.Idempotent {
		t.Fatal("non canonical text reported idempotent")
	}
	if rt.Output != "a: 1\nb:\n  - x\n" {
		t.Errorf("output %q", rt.Output)
	}
	formatted := libdiff.Format(rt.Diff, -1)
	if !strings.Contains(formatted, "+  - x") || !strings.Contains(formatted, "-# comment") {
		t.Errorf("diff missing lines:\n%s", formatted)
	}
	if len(rt.Changes) != 0 {
		t.Errorf("output does not parse to the same tree: %v", rt.Changes)
	}
}

func TestCheckRoundTripError(t *testing.T) {
	if _, err := CheckRoundTrip(": x"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := CheckJSONRoundTrip(""); err == nil {
		t.Fatal("expected error for empty json")
	}
}

func TestJSONRoundTripNullElements(t *testing.T) {
	for _, doc := range []string{`[1, null]`, `{"a":[null]}`, `[[null, null], null]`} {
		t.Run(doc, func(t *testing.T) {
			rt, err := CheckJSONRoundTrip(doc)
			if err != nil {
				t.Fatal(err)
			}
			if !rt.Equal || rt.Patch != nil {
				t.Errorf("got equal=%t patch=%s\njson:\n%s", rt.Equal, rt.Patch, rt.JSON)
			}
		})
	}
}

func TestJSONRoundTripLargeInt(t *testing.T) {
	rt, err := CheckJSONRoundTrip(`{"n": 12345678901234567890}`)
	if err != nil {
		t.Fatal(err)
	}
	// beyond int64 integers are carried as floats
	if rt.Block != "n: 12345678901234567000.0\n" {
		t.Errorf("block %q", rt.Block)
	}
	if !rt.Equal {
		t.Errorf("expected equal as numbers, json:\n%s", rt.JSON)
	}
}

func TestSameJSON(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`1`, `1.0`, true},
		{`1`, `2`, false},
		{`{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`, true},
		{`{"a": 1}`, `{"a": 1, "b": 2}`, false},
		{`{"a": 1}`, `{"b": 1}`, false},
		{`[1, null]`, `[1, null]`, true},
		{`[1, null]`, `[null, 1]`, false},
		{`[1]`, `[1, 1]`, false},
		{`null`, `false`, false},
		{`"1"`, `1`, false},
		{`{"a": [null, {"b": 1.5}]}`, `{"a": [null, {"b": 1.5}]}`, true},
	}
	for _, tc := range tests {
		t.Run(tc.a+" "+tc.b, func(t *testing.T) {
			if got := sameJSON(mustJSON(t, tc.a), mustJSON(t, tc.b)); got != tc.want {
				t.Errorf("got %t want %t", got, tc.want)
			}
		})
	}
}

func TestHasNullElement(t *testing.T) {
	tests := map[string]bool{
		`[1, null]`:               true,
		`{"a": [null]}`:           true,
		`{"a": null}`:             false,
		`[{"a": null}]`:           false,
		`[[1], {"b": [2, null]}]`: true,
		`null`:                    false,
	}
	for doc, want := range tests {
		if got := hasNullElement(mustJSON(t, doc)); got != want {
			t.Errorf("%s: got %t want %t", doc, got, want)
		}
	}
}

func TestJSONToStructuredTextLargeMapping(t *testing.T) {
	const n = 100000
	b := &strings.Builder{}
	b.WriteByte('{')
	for i := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, `"k%d": %d`, i, i)
	}
	b.WriteByte('}')
	start := time.Now()
	text, err := JSONToStructuredText(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(text, "\n"); got != n {
		t.Fatalf("got %d lines want %d", got, n)
	}
	back, err := StructuredTextToJSON(text)
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 10*time.Second {
		t.Errorf("converting %d keys both ways took %s", n, d)
	}
	node := mustJSON(t, back)
	if node.Len() != n || node.Fields[n-1] != fmt.Sprintf("k%d", n-1) {
		t.Errorf("got %d fields", node.Len())
	}
}

func mustJSON(t *testing.T, j string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(j), parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	return node
}
