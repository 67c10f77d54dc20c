package value

import "fmt"

type (
	// Code classifies a parse failure.
	Code string

	// ParseError reports malformed constant text.
	// Off is the byte offset of the offending token in the parsed input.
	ParseError struct {
		Off  int
		Code Code
		Msg  string
	}
)

const (
	ErrSyntax       Code = "syntax"
	ErrKeyword      Code = "unknown-keyword"
	ErrField        Code = "bad-field"
	ErrUnitRange    Code = "unit-range"
	ErrNonCanonical Code = "non-canonical"
)

func NewParseError(off int, code Code, f string, args ...any) *ParseError {
	return &ParseError{
		Off:  off,
		Code: code,
		Msg:  fmt.Sprintf(f, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at pos %d: %s (%s)", e.Off, e.Msg, e.Code)
}
