package u256

import "math/bits"

// DivRem returns the quotient and remainder of x / y, such that
// x = y*q + r and r < y.
func (x U256) DivRem(y U256) (q, r U256, err error) {
	if y.IsZero() {
		return Zero, Zero, ErrDivisionByZero
	}
	q, r = divRem(x, y)
	return q, r, nil
}

// CheckedDiv returns x / y, or false if y is zero.
func (x U256) CheckedDiv(y U256) (U256, bool) {
	if y.IsZero() {
		return Zero, false
	}
	q, _ := divRem(x, y)
	return q, true
}

// CheckedRem returns x mod y, or false if y is zero.
func (x U256) CheckedRem(y U256) (U256, bool) {
	if y.IsZero() {
		return Zero, false
	}
	_, r := divRem(x, y)
	return r, true
}

// WrappingDiv is x / y. Unsigned division cannot overflow, so it only
// differs from CheckedDiv in how a zero divisor is reported.
func (x U256) WrappingDiv(y U256) (U256, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// WrappingRem is x mod y; a zero divisor yields ErrDivisionByZero.
func (x U256) WrappingRem(y U256) (U256, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// OverflowingDiv is x / y with an overflow flag that is always false.
func (x U256) OverflowingDiv(y U256) (U256, bool, error) {
	q, _, err := x.DivRem(y)
	return q, false, err
}

// OverflowingRem is x mod y with an overflow flag that is always false.
func (x U256) OverflowingRem(y U256) (U256, bool, error) {
	_, r, err := x.DivRem(y)
	return r, false, err
}

// divRem requires y != 0.
func divRem(x, y U256) (q, r U256) {
	if x.Lt(y) {
		return Zero, x
	}

	n := 4
	for y[n-1] == 0 {
		n--
	}
	if n == 1 {
		var rem uint64
		q, rem = divRemLimb(x, y[0])
		return q, U256{rem}
	}
	return divRemKnuth(x, y, n)
}

// divRemLimb divides x by a single nonzero limb, carrying the remainder
// down from the top limb.
func divRemLimb(x U256, d uint64) (q U256, rem uint64) {
	for i := 3; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, x[i], d)
	}
	return q, rem
}

// divRemKnuth is Knuth's algorithm D for a divisor of n >= 2 limbs.
func divRemKnuth(x, y U256, n int) (q, r U256) {
	// Normalize so the divisor's top limb has its high bit set. Shifts by 64
	// yield 0 in Go, which covers s == 0.
	s := uint(bits.LeadingZeros64(y[n-1]))
	var v [4]uint64
	for i := n - 1; i > 0; i-- {
		v[i] = y[i]<<s | y[i-1]>>(64-s)
	}
	v[0] = y[0] << s

	var u [5]uint64
	u[4] = x[3] >> (64 - s)
	for i := 3; i > 0; i-- {
		u[i] = x[i]<<s | x[i-1]>>(64-s)
	}
	u[0] = x[0] << s

	vtop, vnext := v[n-1], v[n-2]
	for j := 4 - n; j >= 0; j-- {
		qhat := estimate(u[j+n], u[j+n-1], u[j+n-2], vtop, vnext)

		// u[j:j+n+1] -= qhat * v
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			ph, pl := bits.Mul64(qhat, v[i])
			var c uint64
			pl, c = bits.Add64(pl, carry, 0)
			carry = ph + c
			u[j+i], borrow = bits.Sub64(u[j+i], pl, borrow)
		}
		u[j+n], borrow = bits.Sub64(u[j+n], carry, borrow)

		// qhat was one too large: add the divisor back.
		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				u[j+i], c = bits.Add64(u[j+i], v[i], c)
			}
			u[j+n] += c
		}
		q[j] = qhat
	}

	for i := 0; i < n; i++ {
		r[i] = u[i]>>s | u[i+1]<<(64-s)
	}
	return q, r
}

// estimate returns the trial quotient limb for (u2:u1:u0) / (vtop:vnext),
// at most one larger than the true limb. Requires u2 <= vtop.
func estimate(u2, u1, u0, vtop, vnext uint64) uint64 {
	var qhat, rhat uint64
	if u2 >= vtop {
		// The two-limb quotient would not fit in a limb; start from 2^64-1,
		// whose remainder is u1 + vtop.
		qhat = ^uint64(0)
		var c uint64
		rhat, c = bits.Add64(u1, vtop, 0)
		if c != 0 {
			return qhat
		}
	} else {
		qhat, rhat = bits.Div64(u2, u1, vtop)
	}

	for {
		ph, pl := bits.Mul64(qhat, vnext)
		if ph < rhat || (ph == rhat && pl <= u0) {
			return qhat
		}
		qhat--
		var c uint64
		rhat, c = bits.Add64(rhat, vtop, 0)
		if c != 0 {
			return qhat
		}
	}
}
