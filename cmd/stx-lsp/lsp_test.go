package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/structext/format"
)

func TestDocFormat(t *testing.T) {
	tests := map[string]format.Format{
		"file:///a/b.json":  format.JSONFormat,
		"file:///a/b.jsonc": format.JSONFormat,
		"file:///a/b.yaml":  format.BlockFormat,
		"file:///a/b.txt":   format.BlockFormat,
		"untitled:1":        format.BlockFormat,
	}
	for uri, want := range tests {
		if got := docFormat(uri); got != want {
			t.Errorf("%s: got %s want %s", uri, got, want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		content string
		want    []protocol.Diagnostic
	}{
		{
			name:    "valid",
			uri:     "file:///ok.txt",
			content: "a: 1\nb:\n  - x\n",
			want:    []protocol.Diagnostic{},
		},
		{
			name:    "missing separator",
			uri:     "file:///bad.txt",
			content: "a: 1\nnot a pair\n",
			want: []protocol.Diagnostic{{
				Range: protocol.Range{
					Start: protocol.Position{Line: 1},
					End:   protocol.Position{Line: 1, Character: 10},
				},
				Severity: protocol.DiagnosticSeverityError,
				Source:   "stx",
			}},
		},
		{
			name:    "bad json",
			uri:     "file:///bad.json",
			content: "{\n  \"a\": 1,\n  \"b\" 2\n}\n",
			want: []protocol.Diagnostic{{
				Range: protocol.Range{
					Start: protocol.Position{Line: 2},
					End:   protocol.Position{Line: 2, Character: 7},
				},
				Severity: protocol.DiagnosticSeverityError,
				Source:   "stx",
			}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := diagnostics(newDocument(tc.uri, tc.content, 1))
			for i := range got {
				if got[i].Message == "" {
					t.Errorf("diagnostic %d has no message", i)
				}
				got[i].Message = ""
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("diagnostics (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineRange(t *testing.T) {
	got := lineRange("k: 𝄞\n", 0)
	if got.End.Character != 5 {
		t.Errorf("surrogate pair width: got %d want 5", got.End.Character)
	}
	got = lineRange("a\r\n", 0)
	if got.End.Character != 1 {
		t.Errorf("carriage return counted: got %d", got.End.Character)
	}
	got = lineRange("a\n", 5)
	if got.Start.Line != 5 || got.End.Character != 0 {
		t.Errorf("past the end: got %+v", got)
	}
}

func TestFormatEdits(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		content string
		want    []protocol.TextEdit
	}{
		{
			name:    "canonical",
			uri:     "file:///a.txt",
			content: "a: 1\nb:\n  c: x\n",
			want:    []protocol.TextEdit{},
		},
		{
			name:    "reindent",
			uri:     "file:///a.txt",
			content: "a: 1\nb:\n    c: x",
			want: []protocol.TextEdit{{
				Range: protocol.Range{
					End: protocol.Position{Line: 3},
				},
				NewText: "a: 1\nb:\n  c: x\n",
			}},
		},
		{
			name:    "json",
			uri:     "file:///a.json",
			content: `{"a":[1,2]}`,
			want: []protocol.TextEdit{{
				Range: protocol.Range{
					End: protocol.Position{Line: 1},
				},
				NewText: "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n",
			}},
		},
		{
			name:    "blank",
			uri:     "file:///a.txt",
			content: "",
			want:    []protocol.TextEdit{},
		},
		{
			name:    "parse error",
			uri:     "file:///a.txt",
			content: "a: 1\n- b\n",
			want:    nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatEdits(newDocument(tc.uri, tc.content, 1))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("edits (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHover(t *testing.T) {
	s := NewServer(nil, nil)
	ctx := context.Background()
	uri := protocol.DocumentURI("file:///doc.txt")
	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "a: 1\n"},
	})
	if err != nil {
		t.Fatal(err)
	}
	params := &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	}
	h, err := s.Hover(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	if h == nil || !strings.Contains(h.Contents.Value, "\"a\": 1") {
		t.Fatalf("hover: got %+v", h)
	}

	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "oops\n- x\n"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h, _ := s.Hover(ctx, params); h != nil {
		t.Errorf("hover on a broken document: %+v", h)
	}
	if doc := s.docs.get(string(uri)); doc == nil || doc.version != 2 {
		t.Errorf("change not stored: %+v", doc)
	}

	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(string(uri)) != nil {
		t.Errorf("document not removed")
	}
}
