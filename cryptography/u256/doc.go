// Package u256 provides U256, a fixed-width 256-bit unsigned integer.
//
// U256 is a value type of four 64-bit limbs, least significant first. Every
// operation returns a new value and never modifies its operands, so values
// can be shared freely between goroutines.
//
// There is no default "Add": each of Add, Sub and Mul comes in four overflow
// policies, and the caller picks one at the call site:
//   - Checked*: (result, ok); ok is false when the result does not fit
//   - Wrapping*: the low 256 bits of the true result
//   - Overflowing*: the wrapped result plus an overflow flag
//   - Saturating*: clamped to Max (or Zero for Sub)
//
// Division and remainder fail with ErrDivisionByZero under every policy.
//
// Timing: Add, Sub, Mul, the bitwise operations, shifts by a public amount,
// Eq, Lt and the saturating clamp do not branch on limb values. Division,
// Cmp, parsing and formatting are variable-time and must not be fed secrets
// when timing matters.
//
// Byte conversions always name their order; there is no implicit default.
package u256
