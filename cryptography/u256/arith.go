package u256

import "math/bits"

// add returns x+y mod 2^256 and the carry out of the top limb (0 or 1).
func add(x, y U256) (z U256, carry uint64) {
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	return z, carry
}

// sub returns x-y mod 2^256 and the borrow out of the top limb (0 or 1).
func sub(x, y U256) (z U256, borrow uint64) {
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	return z, borrow
}

// mulFull is schoolbook multiplication into the full 512-bit product,
// returned as its low and high halves.
func mulFull(x, y U256) (lo, hi U256) {
	var r [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			ph, pl := bits.Mul64(x[i], y[j])
			var c uint64
			pl, c = bits.Add64(pl, r[i+j], 0)
			ph += c
			pl, c = bits.Add64(pl, carry, 0)
			ph += c
			r[i+j] = pl
			carry = ph
		}
		r[i+4] = carry
	}
	copy(lo[:], r[:4])
	copy(hi[:], r[4:])
	return lo, hi
}

// mulOverflow returns the low half of x*y and 1 if the high half is nonzero.
func mulOverflow(x, y U256) (U256, uint64) {
	lo, hi := mulFull(x, y)
	nz := hi[0] | hi[1] | hi[2] | hi[3]
	// 1 iff nz != 0, without a branch.
	return lo, (nz | -nz) >> 63
}

// clampHigh returns Max when flag is 1 and z when it is 0.
func clampHigh(z U256, flag uint64) U256 {
	mask := -flag
	return U256{z[0] | mask, z[1] | mask, z[2] | mask, z[3] | mask}
}

// clampLow returns Zero when flag is 1 and z when it is 0.
func clampLow(z U256, flag uint64) U256 {
	mask := -flag
	return U256{z[0] &^ mask, z[1] &^ mask, z[2] &^ mask, z[3] &^ mask}
}

// CheckedAdd returns x + y, or false if the sum exceeds 256 bits.
func (x U256) CheckedAdd(y U256) (U256, bool) {
	z, c := add(x, y)
	if c != 0 {
		return Zero, false
	}
	return z, true
}

// WrappingAdd returns x + y mod 2^256.
func (x U256) WrappingAdd(y U256) U256 {
	z, _ := add(x, y)
	return z
}

// OverflowingAdd returns x + y mod 2^256 and whether it wrapped.
func (x U256) OverflowingAdd(y U256) (U256, bool) {
	z, c := add(x, y)
	return z, c != 0
}

// SaturatingAdd returns x + y, clamped to Max.
func (x U256) SaturatingAdd(y U256) U256 {
	return clampHigh(add(x, y))
}

// CheckedSub returns x - y, or false if y > x.
func (x U256) CheckedSub(y U256) (U256, bool) {
	z, b := sub(x, y)
	if b != 0 {
		return Zero, false
	}
	return z, true
}

// WrappingSub returns x - y mod 2^256.
func (x U256) WrappingSub(y U256) U256 {
	z, _ := sub(x, y)
	return z
}

// OverflowingSub returns x - y mod 2^256 and whether it borrowed.
func (x U256) OverflowingSub(y U256) (U256, bool) {
	z, b := sub(x, y)
	return z, b != 0
}

// SaturatingSub returns x - y, clamped to Zero.
func (x U256) SaturatingSub(y U256) U256 {
	return clampLow(sub(x, y))
}

// CheckedMul returns x * y, or false if the product exceeds 256 bits.
func (x U256) CheckedMul(y U256) (U256, bool) {
	z, o := mulOverflow(x, y)
	if o != 0 {
		return Zero, false
	}
	return z, true
}

// WrappingMul returns the low 256 bits of x * y.
func (x U256) WrappingMul(y U256) U256 {
	z, _ := mulFull(x, y)
	return z
}

// OverflowingMul returns the low 256 bits of x * y and whether any high bit was set.
func (x U256) OverflowingMul(y U256) (U256, bool) {
	z, o := mulOverflow(x, y)
	return z, o != 0
}

// SaturatingMul returns x * y, clamped to Max.
func (x U256) SaturatingMul(y U256) U256 {
	return clampHigh(mulOverflow(x, y))
}
