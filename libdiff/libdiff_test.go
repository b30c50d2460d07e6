package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/structext/ir"
)

func TestLines(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 20\nc: 3\n"
	lines := Lines(from, to)
	if !Changed(lines) {
		t.Fatal("expected change")
	}
	want := []Line{
		{Equal, "a: 1"},
		{Delete, "b: 2"},
		{Insert, "b: 20"},
		{Equal, "c: 3"},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if got := Format(lines, -1); got != " a: 1\n-b: 2\n+b: 20\n c: 3\n" {
		t.Errorf("Format = %q", got)
	}
	if Changed(Lines(from, from)) {
		t.Errorf("identical text reported as changed")
	}
}

func TestFormatContext(t *testing.T) {
	lines := []Line{
		{Equal, "1"}, {Equal, "2"}, {Equal, "3"}, {Delete, "4"}, {Equal, "5"}, {Equal, "6"},
	}
	if got := Format(lines, 1); got != "...\n 3\n-4\n 5\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestNodes(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{Key: "gone", Val: ir.Null()},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromFloat(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
		{Key: "new key", Val: ir.FromBool(true)},
		{Key: "x.y", Val: ir.FromBool(true)},
	})
	changes := Nodes(from, to)
	paths := []string{}
	for _, c := range changes {
		paths = append(paths, c.Path)
	}
	want := []string{"$.a", "$.b[1]", "$.gone", "$.new key", `$["x.y"]`}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	if len(Nodes(from, from.Clone())) != 0 {
		t.Errorf("expected no changes for equal trees")
	}
}
