package main

import (
	"bytes"
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/structext/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns a single edit replacing doc with its canonical
// form, no edits when it is already canonical, and nil when it does
// not parse.
func formatEdits(doc *document) []protocol.TextEdit {
	if doc.err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf, encode.EncodeFormat(doc.format)); err != nil {
		return nil
	}
	formatted := buf.String()
	if strings.TrimSpace(doc.content) == "" && doc.node.IsEmptyContainer() {
		formatted = ""
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}
}
