package main

import (
	"bytes"
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/signadot/structext/encode"
	"github.com/signadot/structext/format"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text := hoverText(doc)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// hoverText shows the document converted to JSON, or to block text
// when it already is JSON.
func hoverText(doc *document) string {
	if doc.err != nil {
		return ""
	}
	to, lang := format.JSONFormat, "json"
	if doc.format.IsJSON() {
		to, lang = format.BlockFormat, "yaml"
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf, encode.EncodeFormat(to)); err != nil {
		return ""
	}
	return fmt.Sprintf("**%s**\n```%s\n%s```\n", to, lang, buf.String())
}
