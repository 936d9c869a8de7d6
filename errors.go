package intx

import "github.com/pkg/errors"

// ErrDivisionByZero is returned by QuoRem/UDivRem/SDivRem when the divisor
// is zero; Quo, Rem, SQuo and SRem panic with it instead.
var ErrDivisionByZero = errors.New("intx: division by zero")

// ErrSyntax is returned by the parsing constructors when the input contains
// a character outside the expected alphabet, or exceeds the maximum length
// for the target width.
type ErrSyntax struct {
	Width int
	Input string
	Cause error
}

func (e *ErrSyntax) Error() string {
	return errors.Wrapf(e.Cause, "intx: invalid uint%d literal %q", e.Width, e.Input).Error()
}

func (e *ErrSyntax) Unwrap() error { return e.Cause }

var (
	errEmptyInput   = errors.New("empty input")
	errBadDigit     = errors.New("invalid digit")
	errTooLong      = errors.New("literal too long for target width")
	errBadByteCount = errors.New("wrong number of bytes for target width")
)
