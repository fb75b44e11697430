package u256

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidLength  = errors.New("u256: invalid byte length")
	ErrInvalidDigit   = errors.New("u256: invalid digit")
	ErrEmpty          = errors.New("u256: empty string")
	ErrOverflow       = errors.New("u256: value exceeds 256 bits")
	ErrDivisionByZero = errors.New("u256: division by zero")
)

// ParseError records a failed string conversion.
type ParseError struct {
	Func  string // the failing function (FromHex, FromDecimal, ...)
	Input string
	Err   error // one of ErrEmpty, ErrInvalidDigit, ErrOverflow
}

func (e *ParseError) Error() string {
	return "u256." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
