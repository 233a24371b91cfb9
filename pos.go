package yini

import (
	"errors"
	"fmt"
	"os"
)

// Pos is a 1-based line and column within a parsed buffer.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Err returns an error with the given message prefixed by the position.
func (p Pos) Err(msg string) error {
	return errors.New(p.String() + " - " + msg)
}

// ParseError is a single diagnostic recorded while parsing. Diagnostics never
// stop the parse, the position is that of the cursor when the defect was
// detected.
type ParseError struct {
	Pos

	Kind ErrorKind

	// Text is the offending literal for InvalidFloatFormat and
	// InvalidIntegerFormat.
	Text string

	// Char is the offending byte for UnexpectedCharacter.
	Char byte
}

func (e ParseError) Error() string {
	switch e.Kind {
	case InvalidFloatFormat, InvalidIntegerFormat:
		return fmt.Sprintf("%s - %s %q", e.Pos, e.Kind, e.Text)
	case UnexpectedCharacter:
		return fmt.Sprintf("%s - %s %q", e.Pos, e.Kind, rune(e.Char))
	}
	return e.Pos.String() + " - " + e.Kind.String()
}

// Stderrh is an error handler that writes each diagnostic to standard error.
var Stderrh = func(e ParseError) {
	fmt.Fprintln(os.Stderr, e.Error())
}
