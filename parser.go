package yini

import (
	"fmt"
	"io"
	"strings"
)

// Parser parses a single document. It is not safe for concurrent use.
type Parser struct {
	*scanner

	root *Struct
}

// ParserOption configures a Parser.
type ParserOption func(p *Parser)

// WithErrorHandler sets a handler that is called with each diagnostic as it
// is recorded.
func WithErrorHandler(errh func(ParseError)) ParserOption {
	return func(p *Parser) {
		p.errh = errh
	}
}

// NewParser returns a parser over the given buffer. The buffer must not be
// modified while the parser is in use.
func NewParser(src []byte, opts ...ParserOption) *Parser {
	p := &Parser{
		scanner: newScanner(src, nil),
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses the document and returns its root struct. The tree is always
// returned, check Errors to see whether it can be trusted. Calling Parse
// again returns the same tree.
func (p *Parser) Parse() *Struct {
	if p.root == nil {
		p.root = p.block(true)
	}
	return p.root
}

// Errors returns the diagnostics recorded so far, in the order they were
// found.
func (p *Parser) Errors() []ParseError {
	return p.errs
}

// Parse reads all of r and parses it. The returned struct is never nil. If
// any diagnostics were recorded then an error counting them is returned
// alongside the tree.
func Parse(name string, r io.Reader, errh func(ParseError)) (*Struct, error) {
	b, err := io.ReadAll(r)

	if err != nil {
		return NewStruct(), fmt.Errorf("yini: %s: %w", name, err)
	}

	p := NewParser(b, WithErrorHandler(errh))
	s := p.Parse()

	if n := len(p.errs); n > 0 {
		return s, fmt.Errorf("yini: %s: parser encountered %d error(s)", name, n)
	}
	return s, nil
}

// block parses key/value lines up to the closing } of a block, or up to the
// end of input for the document root.
func (p *Parser) block(root bool) *Struct {
	s := NewStruct()

	for {
		p.skipSpace()

		switch p.peek() {
		case eof:
			if !root {
				p.err(UnterminatedBlock)
			}
			return s
		case '}':
			if !root {
				p.advance()
				return s
			}
		}

		pos := p.getpos()
		key, ok := p.ident()

		if !ok {
			p.unexpected()
			p.skipLine()
			continue
		}

		if p.peek() == ':' {
			p.advance()
		}

		p.skipHorizontal()

		if isLineEnd(p.peek()) {
			p.err(ExpectedValueOnSameLine)

			if p.peek() == '\n' {
				p.advance()
			}
			continue
		}

		s.set(key, pos, p.field())
		p.wantLineEnd()
	}
}

// field parses the value of a key. Content left on the line after the first
// value turns the whole rest of the line into a single string.
func (p *Parser) field() Value {
	p.skipHorizontal()

	if p.peek() == '(' {
		return p.tuple()
	}

	start := p.pos
	v := p.value()

	p.skipHorizontal()

	if c := p.peek(); c == '}' || isLineEnd(c) {
		return v
	}

	for c := p.peek(); c != '\n' && c != '#' && c != eof; c = p.peek() {
		p.advance()
	}

	if s := strings.TrimSpace(p.text(start)); s != "" {
		return String(s)
	}
	return v
}

// wantLineEnd reports anything other than the end of the line after a
// value. Nothing is consumed beyond horizontal whitespace.
func (p *Parser) wantLineEnd() {
	p.skipHorizontal()

	if !isLineEnd(p.peek()) {
		p.err(ExpectedNewlineAfterKeyValue)
	}
}

func (p *Parser) value() Value {
	c := p.peek()

	switch {
	case c == eof:
		p.err(UnexpectedEndOfInput)
		return String("")
	case c == '(':
		return p.tuple()
	case c == '"':
		return String(p.str())
	case c == '{':
		p.advance()
		return p.block(false)
	case c == '[':
		p.advance()
		return p.array()
	case c == ':':
		p.advance()
		return p.variant()
	case c == '-' || isDigit(c):
		return p.number()
	}

	id, ok := p.ident()

	if !ok {
		p.unexpected()
		return String("")
	}

	switch id {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return String(id)
}

// variant parses the name following a : along with a payload that starts
// immediately after the name.
func (p *Parser) variant() Value {
	name := p.run()

	if name == "" {
		p.unexpected()
	}

	v := Variant{Name: name}

	switch p.peek() {
	case '(':
		v.Payload = p.tuple()
	case '{':
		p.advance()
		v.Payload = p.block(false)
	case '[':
		p.advance()
		v.Payload = p.array()
	}
	return v
}

func (p *Parser) array() Array {
	arr := Array{}

	for {
		p.skipSpace()

		switch p.peek() {
		case ']':
			p.advance()
			return arr
		case eof:
			p.err(UnexpectedEndOfInput)
			return arr
		}

		pos := p.pos
		v := p.value()

		// Nothing could be read, the byte has been reported so step over it.
		if p.pos == pos {
			p.advance()
			continue
		}
		arr = append(arr, v)
	}
}

func startsValue(c int) bool {
	switch c {
	case '"', '{', '[', '(', '-', ':':
		return true
	}
	return isDigit(c)
}

func (p *Parser) tuple() Tuple {
	p.advance()

	t := Tuple{}

	for {
		p.skipSpace()

		c := p.peek()

		switch {
		case c == ')':
			p.advance()
			return t
		case c == eof:
			p.err(UnexpectedEndOfInput)
			return t
		case startsValue(c):
			t = append(t, p.value())
			continue
		}

		start := p.pos

		for c := p.peek(); c != ')' && c != '#' && c != '\n' && c != eof; c = p.peek() {
			p.advance()
		}

		switch s := strings.TrimSpace(p.text(start)); s {
		case "true":
			t = append(t, Bool(true))
		case "false":
			t = append(t, Bool(false))
		default:
			t = append(t, String(s))
		}
	}
}
