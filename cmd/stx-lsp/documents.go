package main

import (
	"context"
	"strings"
	"sync"
	"unicode/utf16"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	node    *ir.Node
	err     error
}

// docFormat picks the format of a document from its name, block text
// unless it ends in .json or .jsonc.
func docFormat(uri string) format.Format {
	if f, ok := format.FromSuffix(uri); ok {
		return f
	}
	return format.BlockFormat
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		format:  docFormat(uri),
	}
	doc.node, doc.err = parse.Parse([]byte(content),
		parse.ParseFormat(doc.format),
		parse.JSONC(strings.HasSuffix(uri, ".jsonc")))
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.client == nil {
		return
	}
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
	if err != nil {
		s.log.Warn("publish diagnostics", zap.String("uri", doc.uri), zap.Error(err))
	}
}

// diagnostics reports the parse error of doc, if any, on the line it
// names.  Errors without a line are reported on the first line.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	line := 0
	msg := doc.err.Error()
	if fe, ok := ir.AsFormatError(doc.err); ok {
		msg = fe.Msg
		if fe.Line > 0 {
			line = fe.Line - 1
		}
	}
	res = append(res, protocol.Diagnostic{
		Range:    lineRange(doc.content, line),
		Severity: protocol.DiagnosticSeverityError,
		Source:   "stx",
		Message:  msg,
	})
	return res
}

// lineRange covers line n of content, in UTF-16 code units.
func lineRange(content string, n int) protocol.Range {
	lines := strings.Split(content, "\n")
	width := 0
	if n < len(lines) {
		width = len(utf16.Encode([]rune(strings.TrimSuffix(lines[n], "\r"))))
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(n)},
		End:   protocol.Position{Line: uint32(n), Character: uint32(width)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// DidChange applies full text changes; the last one wins.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
