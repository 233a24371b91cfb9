package yini

// Kind identifies the shape of a Value.
type Kind uint

//go:generate stringer -type Kind -linecomment
const (
	StringKind  Kind = iota + 1 // string
	IntKind                     // integer
	FloatKind                   // float
	BoolKind                    // boolean
	VariantKind                 // variant
	StructKind                  // struct
	ArrayKind                   // array
	TupleKind                   // tuple
)

// ErrorKind identifies the defect reported by a ParseError.
type ErrorKind uint

//go:generate stringer -type ErrorKind -linecomment
const (
	ExpectedValueOnSameLine      ErrorKind = iota + 1 // expected value on the same line as its key
	ExpectedNewlineAfterKeyValue                      // expected newline after key/value pair
	UnterminatedBlock                                 // unterminated block
	UnterminatedString                                // unterminated string
	InvalidUTF8InNumber                               // invalid utf-8 in number
	InvalidFloatFormat                                // invalid float
	InvalidIntegerFormat                              // invalid integer
	UnexpectedEndOfInput                              // unexpected end of input
	UnexpectedCharacter                               // unexpected character
)
