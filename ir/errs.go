package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/structext/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat

	ErrNoSeparator    = fmt.Errorf("%w: missing key separator", ErrParse)
	ErrEmptyKey       = fmt.Errorf("%w: empty key", ErrParse)
	ErrMixedBlock     = fmt.Errorf("%w: mixed block", ErrParse)
	ErrIndent         = fmt.Errorf("%w: unexpected indentation", ErrParse)
	ErrTabIndent      = fmt.Errorf("%w: tab in indentation", ErrParse)
	ErrInvalidJSON    = fmt.Errorf("%w: invalid json", ErrParse)
	ErrInvalidYAML    = fmt.Errorf("%w: invalid yaml", ErrParse)
	ErrBracketedInput = fmt.Errorf("%w: bracketed input", ErrParse)
)

// FormatError is the single failure kind of conversions.  Line is the
// 1-based source line, or 0 when the failure has no position.
type FormatError struct {
	Line int
	Msg  string
	Err  error
}

func NewFormatError(line int, err error, format string, args ...any) *FormatError {
	return &FormatError{
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AsFormatError extracts a *FormatError from err's chain.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
