package parse

import (
	"strings"

	"github.com/signadot/structext/debug"
	"github.com/signadot/structext/format"
	"github.com/signadot/structext/ir"
	"github.com/signadot/structext/token"
)

// FromBlockText parses indentation structured block text, one element
// of lines per source line.
//
// Blank lines and lines starting with '#' are ignored.  Each block of
// lines at one indentation is a mapping (key: value lines), a sequence
// (- item lines) or a single scalar line.  Input with no content parses
// to an empty mapping.
func FromBlockText(lines []string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.BlockFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return fromBlockText(lines, pOpts)
}

type line struct {
	num    int
	indent int
	text   string
}

type blockKind int

const (
	unresolvedBlock blockKind = iota
	mappingBlock
	sequenceBlock
)

type blockParser struct {
	lines []line
	pos   int
	opts  *parseOpts
}

func fromBlockText(lines []string, opts *parseOpts) (*ir.Node, error) {
	src, err := scanLines(lines)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		return ir.EmptyObject(), nil
	}
	p := &blockParser{lines: src, opts: opts}
	node, err := p.block(src[0].indent, false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		return nil, ir.NewFormatError(ln.num, ir.ErrIndent,
			"indentation of %q does not match any enclosing block", ln.text)
	}
	if debug.Parse() {
		debug.Logf("parsed %d lines: %v", len(lines), node)
	}
	return node, nil
}

// scanLines drops blank and comment lines and measures indentation.
func scanLines(lines []string) ([]line, error) {
	res := make([]line, 0, len(lines))
	for i, s := range lines {
		s = strings.TrimRight(s, " \t\r")
		text := strings.TrimLeft(s, " \t")
		if text == "" || text[0] == '#' {
			continue
		}
		ws := s[:len(s)-len(text)]
		if strings.IndexByte(ws, '\t') >= 0 {
			return nil, ir.NewFormatError(i+1, ir.ErrTabIndent, "tab character in indentation")
		}
		res = append(res, line{num: i + 1, indent: len(ws), text: text})
	}
	return res, nil
}

func (p *blockParser) peek() (line, bool) {
	if p.pos >= len(p.lines) {
		return line{}, false
	}
	return p.lines[p.pos], true
}

// block parses the lines at indent starting at p.pos.  When seqOnly
// is set only sequence items are consumed.
func (p *blockParser) block(indent int, seqOnly bool) (*ir.Node, error) {
	kind := unresolvedBlock
	var (
		node    *ir.Node
		mapping *ir.MappingBuilder
	)
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.indent < indent {
			break
		}
		if ln.indent > indent {
			return nil, ir.NewFormatError(ln.num, ir.ErrIndent,
				"unexpected indentation of %q", ln.text)
		}
		if rest, ok := token.SeqItem(ln.text); ok {
			switch kind {
			case mappingBlock:
				return nil, ir.NewFormatError(ln.num, ir.ErrMixedBlock,
					"sequence item %q at the indentation of a mapping (treating the mapping as a sequence would lose its entries)", ln.text)
			case unresolvedBlock:
				kind = sequenceBlock
				node = ir.EmptyArray()
			}
			item, err := p.seqItem(ln, rest)
			if err != nil {
				return nil, err
			}
			node.Append(item)
			continue
		}
		if seqOnly {
			break
		}
		key, rest, err := token.SplitEntry(ln.text)
		switch err {
		case nil:
		case ir.ErrNoSeparator:
			if kind == unresolvedBlock && p.lone(indent) {
				p.pos++
				return token.Literal(ln.text), nil
			}
			if p.opts.lenient {
				if debug.Parse() {
					debug.Logf("line %d: skipping %q: no key separator", ln.num, ln.text)
				}
				p.pos++
				continue
			}
			return nil, ir.NewFormatError(ln.num, ir.ErrNoSeparator,
				"expected \"key: value\", got %q", ln.text)
		default:
			return nil, ir.NewFormatError(ln.num, err, "missing key before ':' in %q", ln.text)
		}
		switch kind {
		case sequenceBlock:
			return nil, ir.NewFormatError(ln.num, ir.ErrMixedBlock,
				"mapping entry %q at the indentation of a sequence", ln.text)
		case unresolvedBlock:
			kind = mappingBlock
			mapping = ir.NewMappingBuilder()
			node = mapping.Node()
		}
		val, err := p.entryValue(ln, rest)
		if err != nil {
			return nil, err
		}
		mapping.Set(key, val)
	}
	if node == nil {
		return ir.EmptyObject(), nil
	}
	return node, nil
}

// lone reports whether the line at p.pos is the only line of the block
// at indent.
func (p *blockParser) lone(indent int) bool {
	if p.pos+1 >= len(p.lines) {
		return true
	}
	return p.lines[p.pos+1].indent < indent
}

func (p *blockParser) entryValue(ln line, rest string) (*ir.Node, error) {
	p.pos++
	next, ok := p.peek()
	if ok && next.indent > ln.indent {
		if rest != "" {
			return nil, ir.NewFormatError(next.num, ir.ErrIndent,
				"unexpected indentation of %q after a scalar value", next.text)
		}
		return p.block(next.indent, false)
	}
	if rest == "" && ok && next.indent == ln.indent {
		if _, isItem := token.SeqItem(next.text); isItem {
			return p.block(ln.indent, true)
		}
	}
	if rest != "" {
		return token.Literal(rest), nil
	}
	return ir.EmptyObject(), nil
}

func (p *blockParser) seqItem(ln line, rest string) (*ir.Node, error) {
	if rest == "" {
		p.pos++
		next, ok := p.peek()
		if ok && next.indent > ln.indent {
			return p.block(next.indent, false)
		}
		return ir.Null(), nil
	}
	if _, isItem := token.SeqItem(rest); isItem || token.HasSeparator(rest) {
		// re-read the rest of the line as the first line of a block
		// aligned with it.
		after := ln.text[1:]
		col := ln.indent + 1 + len(after) - len(strings.TrimLeft(after, " "))
		p.lines[p.pos] = line{num: ln.num, indent: col, text: rest}
		return p.block(col, false)
	}
	p.pos++
	if next, ok := p.peek(); ok && next.indent > ln.indent {
		return nil, ir.NewFormatError(next.num, ir.ErrIndent,
			"unexpected indentation of %q after a scalar item", next.text)
	}
	return token.Literal(rest), nil
}
