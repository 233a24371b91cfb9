package yini

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type scanner struct {
	*cursor

	errs []ParseError
	errh func(ParseError)
}

func newScanner(src []byte, errh func(ParseError)) *scanner {
	return &scanner{
		cursor: newCursor(src),
		errh:   errh,
	}
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isDelim reports whether c ends an identifier or variant name.
func isDelim(c int) bool {
	switch c {
	case eof, '{', '}', '[', ']', '(', ')', ':':
		return true
	}
	return isSpace(c)
}

// isLineEnd reports whether nothing more of the current line can be read as
// a value. A carriage return is taken as the start of a CRLF pair.
func isLineEnd(c int) bool {
	return c == eof || c == '\n' || c == '\r' || c == '#'
}

func (sc *scanner) report(e ParseError) {
	sc.errs = append(sc.errs, e)

	if sc.errh != nil {
		sc.errh(e)
	}
}

func (sc *scanner) err(kind ErrorKind) {
	sc.report(ParseError{
		Pos:  sc.getpos(),
		Kind: kind,
	})
}

func (sc *scanner) errText(kind ErrorKind, text string) {
	sc.report(ParseError{
		Pos:  sc.getpos(),
		Kind: kind,
		Text: text,
	})
}

// unexpected reports the byte under the cursor as unexpected, or the end of
// input if there is none.
func (sc *scanner) unexpected() {
	c := sc.peek()

	if c == eof {
		sc.err(UnexpectedEndOfInput)
		return
	}

	sc.report(ParseError{
		Pos:  sc.getpos(),
		Kind: UnexpectedCharacter,
		Char: byte(c),
	})
}

// skipSpace consumes whitespace, including newlines, and # comments.
func (sc *scanner) skipSpace() {
	for {
		for isSpace(sc.peek()) {
			sc.advance()
		}

		if sc.peek() != '#' {
			return
		}

		for c := sc.advance(); c != '\n' && c != eof; c = sc.advance() {
		}
	}
}

// skipHorizontal consumes spaces and tabs only.
func (sc *scanner) skipHorizontal() {
	for c := sc.peek(); c == ' ' || c == '\t'; c = sc.peek() {
		sc.advance()
	}
}

// skipLine consumes everything up to and including the next newline.
func (sc *scanner) skipLine() {
	for c := sc.advance(); c != '\n' && c != eof; c = sc.advance() {
	}
}

func (sc *scanner) text(start int) string {
	return strings.ToValidUTF8(string(sc.buf[start:sc.pos]), string(utf8.RuneError))
}

// run consumes bytes up to the next delimiter.
func (sc *scanner) run() string {
	start := sc.pos

	for !isDelim(sc.peek()) {
		sc.advance()
	}
	return sc.text(start)
}

// ident scans a quoted string or a bare run of bytes up to the next
// delimiter. The boolean is false when there was nothing to scan.
func (sc *scanner) ident() (string, bool) {
	if sc.peek() == '"' {
		return sc.str(), true
	}

	s := sc.run()
	return s, s != ""
}

// str scans a double quoted string and resolves its escapes. An unterminated
// string is reported, and what was read of it is returned.
func (sc *scanner) str() string {
	sc.advance()

	var buf strings.Builder

	for {
		c := sc.advance()

		switch c {
		case eof:
			sc.err(UnterminatedString)
			return strings.ToValidUTF8(buf.String(), string(utf8.RuneError))
		case '"':
			return strings.ToValidUTF8(buf.String(), string(utf8.RuneError))
		case '\\':
			switch esc := sc.advance(); esc {
			case eof:
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case 'r':
				buf.WriteByte('\r')
			default:
				buf.WriteByte(byte(esc))
			}
		default:
			buf.WriteByte(byte(c))
		}
	}
}

func (sc *scanner) digits() {
	for isDigit(sc.peek()) {
		sc.advance()
	}
}

// number scans an integer or float literal. A literal that does not parse
// is reported and replaced with zero.
func (sc *scanner) number() Value {
	start := sc.pos

	if sc.peek() == '-' {
		sc.advance()
	}

	sc.digits()

	isFloat := false

	if sc.peek() == '.' {
		isFloat = true

		sc.advance()
		sc.digits()
	}

	lit := sc.buf[start:sc.pos]

	if !utf8.Valid(lit) {
		sc.err(InvalidUTF8InNumber)

		if isFloat {
			return Float(0)
		}
		return Int(0)
	}

	if isFloat {
		f, err := strconv.ParseFloat(string(lit), 64)

		if err != nil {
			sc.errText(InvalidFloatFormat, string(lit))
			return Float(0)
		}
		return Float(f)
	}

	i, err := strconv.ParseInt(string(lit), 10, 64)

	if err != nil {
		sc.errText(InvalidIntegerFormat, string(lit))
		return Int(0)
	}
	return Int(i)
}
