// Package errors classifies cryptotool failures and maps them to exit codes.
package errors

import sterrors "errors"

// Exit codes returned by cryptotool.
const (
	ExitOK         = 0
	ExitFailure    = 1 // I/O and other runtime failures
	ExitUsage      = 2
	ExitArithmetic = 3
)

var (
	// ErrUsage indicates a malformed command line: bad flag, operand or arity.
	ErrUsage = sterrors.New("usage error")

	// ErrArithmetic indicates a well-formed operation with no 256-bit
	// result, such as a checked overflow or a division by zero.
	ErrArithmetic = sterrors.New("no result")
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case sterrors.Is(err, ErrUsage):
		return ExitUsage
	case sterrors.Is(err, ErrArithmetic):
		return ExitArithmetic
	}
	return ExitFailure
}
