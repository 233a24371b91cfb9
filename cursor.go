package yini

const eof = -1

// cursor is the read position over an immutable input buffer. It is the only
// thing that moves the position, line and column forward.
type cursor struct {
	buf  []byte
	pos  int
	line int
	col  int
}

func newCursor(buf []byte) *cursor {
	return &cursor{
		buf:  buf,
		line: 1,
		col:  1,
	}
}

// peek returns the byte at the current position, or eof.
func (c *cursor) peek() int {
	if c.pos >= len(c.buf) {
		return eof
	}
	return int(c.buf[c.pos])
}

// advance consumes and returns the byte at the current position, or eof.
func (c *cursor) advance() int {
	if c.pos >= len(c.buf) {
		return eof
	}

	b := c.buf[c.pos]
	c.pos++

	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return int(b)
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.buf)
}

func (c *cursor) getpos() Pos {
	return Pos{
		Line: c.line,
		Col:  c.col,
	}
}
