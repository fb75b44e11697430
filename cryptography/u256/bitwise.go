package u256

import "math/bits"

func (x U256) And(y U256) U256 {
	return U256{x[0] & y[0], x[1] & y[1], x[2] & y[2], x[3] & y[3]}
}

func (x U256) Or(y U256) U256 {
	return U256{x[0] | y[0], x[1] | y[1], x[2] | y[2], x[3] | y[3]}
}

func (x U256) Xor(y U256) U256 {
	return U256{x[0] ^ y[0], x[1] ^ y[1], x[2] ^ y[2], x[3] ^ y[3]}
}

// Not returns the 256-bit complement of x.
func (x U256) Not() U256 {
	return U256{^x[0], ^x[1], ^x[2], ^x[3]}
}

// ShiftLeft returns x << n. Shifting by 256 or more yields Zero.
func (x U256) ShiftLeft(n uint) U256 {
	if n >= 256 {
		return Zero
	}
	limbs, s := int(n/64), n%64

	var z U256
	for i := 3; i >= limbs; i-- {
		src := i - limbs
		z[i] = x[src] << s
		if src > 0 {
			z[i] |= x[src-1] >> (64 - s)
		}
	}
	return z
}

// ShiftRight returns x >> n. Shifting by 256 or more yields Zero.
func (x U256) ShiftRight(n uint) U256 {
	if n >= 256 {
		return Zero
	}
	limbs, s := int(n/64), n%64

	var z U256
	for i := 0; i < 4-limbs; i++ {
		src := i + limbs
		z[i] = x[src] >> s
		if src < 3 {
			z[i] |= x[src+1] << (64 - s)
		}
	}
	return z
}

// BitLen returns the number of bits needed to represent x; 0 for Zero.
func (x U256) BitLen() int {
	for i := 3; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

func (x U256) LeadingZeros() int { return 256 - x.BitLen() }

// Bit returns bit i of x (0 or 1); bits at 256 and above read as 0.
func (x U256) Bit(i uint) uint {
	if i >= 256 {
		return 0
	}
	return uint(x[i/64]>>(i%64)) & 1
}
