package structext

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
)

func TestJSONToStructuredText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"scenario A", `{"a": 1, "b": [1,2,3]}`, "a: 1\nb:\n  - 1\n  - 2\n  - 3\n"},
		{"blank", "  \n", ""},
		{"empty object", "{}", "{}\n"},
		{"empty array", " [] ", "[]\n"},
		{"scalar", `"x"`, "x\n"},
		{"nested", `{"o": {"p": [{"q": null}], "e": {}}}`, "o:\n  p:\n    - q: null\n  e: {}\n"},
		{"quoted strings", `{"k": "hello \"world\"", "n": "12"}`, "k: \"hello \\\"world\\\"\"\nn: \"12\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSONToStructuredText(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONToStructuredTextErrors(t *testing.T) {
	_, err := JSONToStructuredText(`{"a": }`)
	if !errors.Is(err, ir.ErrInvalidJSON) {
		t.Fatalf("expected invalid json, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid character") {
		t.Errorf("decoder message missing from %q", err.Error())
	}
	if _, err := JSONToStructuredText(`{"a": 1, // c
}`, WithJSONC(true)); err != nil {
		t.Errorf("jsonc: %v", err)
	}
}

func TestStructuredTextToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"scenario B", `key: "hello \"world\""`, "{\n  \"key\": \"hello \\\"world\\\"\"\n}"},
		{"sequence", "b:\n  - 1\n  - 2.5\n  - x", "{\n  \"b\": [\n    1,\n    2.5,\n    \"x\"\n  ]\n}"},
		{"empty", "", "{}"},
		{"empty object", "{}", "{}"},
		{"empty array", "[]", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StructuredTextToJSON(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStructuredTextToJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
	}{
		{"scenario C", ": novalue", ir.ErrEmptyKey, 1},
		{"scenario D", `{"x":1}`, ir.ErrBracketedInput, 1},
		{"bracketed after blank lines", "\n\n  [1, 2]", ir.ErrBracketedInput, 3},
		{"mixed", "a: 1\n- b", ir.ErrMixedBlock, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StructuredTextToJSON(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, expected %v", err, tt.err)
			}
			fe, ok := ir.AsFormatError(err)
			if !ok {
				t.Fatalf("%T is not a FormatError", err)
			}
			if fe.Line != tt.line {
				t.Errorf("line = %d, expected %d", fe.Line, tt.line)
			}
		})
	}
	// bracketed input is a distinct diagnostic, not a generic parse failure
	_, errD := StructuredTextToJSON(`{"x":1}`)
	if errors.Is(errD, ir.ErrNoSeparator) || errors.Is(errD, ir.ErrInvalidJSON) {
		t.Errorf("bracketed input reported as %v", errD)
	}
}

func TestLenientOption(t *testing.T) {
	if _, err := StructuredTextToJSON("a: 1\njunk"); !errors.Is(err, ir.ErrNoSeparator) {
		t.Fatalf("expected ErrNoSeparator, got %v", err)
	}
	got, err := StructuredTextToJSON("a: 1\njunk", WithLenient(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != "{\n  \"a\": 1\n}" {
		t.Errorf("got %q", got)
	}
}

func TestStrictYAML(t *testing.T) {
	got, err := StructuredTextToJSON("a: {b: [1, 2]}\n", WithStrictYAML(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  }\n}"
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		from, to format.Format
		want     string
	}{
		{"block to json", "a: 1\n", format.BlockFormat, format.JSONFormat, "{\n  \"a\": 1\n}\n"},
		{"json to block", `[1, {"k": "v"}]`, format.JSONFormat, format.BlockFormat, "- 1\n- k: v\n"},
		{"block to block", "a:   1\n\n# c\nb:\n- x\n", format.BlockFormat, format.BlockFormat, "a: 1\nb:\n  - x\n"},
		{"json to yaml", `{"z": 1, "a": [true]}`, format.JSONFormat, format.YAMLFormat, "z: 1\na:\n  - true\n"},
		{"yaml to json", "a: [1, x]\n", format.YAMLFormat, format.JSONFormat, "{\n  \"a\": [\n    1,\n    \"x\"\n  ]\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert([]byte(tt.in), tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Convert([]byte("[1]"), format.BlockFormat, format.JSONFormat); !errors.Is(err, ir.ErrBracketedInput) {
		t.Errorf("expected bracketed input error, got %v", err)
	}
}
