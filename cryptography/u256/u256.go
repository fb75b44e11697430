package u256

import (
	"encoding/binary"
	"fmt"
)

// U256 is a 256-bit unsigned integer. U256[0] holds the least significant
// 64 bits: value = Σ U256[i] · 2^(64·i).
type U256 [4]uint64

// Common constants.
var (
	Zero = U256{}
	One  = U256{1}
	Max  = U256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
)

// FromLimbs builds a value from little-endian limbs.
func FromLimbs(limbs [4]uint64) U256 { return U256(limbs) }

// FromUint32 widens v to 256 bits.
func FromUint32(v uint32) U256 { return U256{uint64(v)} }

// FromUint64 widens v to 256 bits.
func FromUint64(v uint64) U256 { return U256{v} }

// FromUint128 builds a value from the two halves of a 128-bit integer.
func FromUint128(hi, lo uint64) U256 { return U256{lo, hi} }

// FromWords32 builds a value from eight 32-bit words, most significant
// first, the order in which a SHA-256 state is serialized.
func FromWords32(w [8]uint32) U256 {
	var z U256
	for i := 0; i < 4; i++ {
		z[3-i] = uint64(w[2*i])<<32 | uint64(w[2*i+1])
	}
	return z
}

// FromBigEndian decodes exactly 32 bytes, most significant first.
func FromBigEndian(b []byte) (U256, error) {
	if len(b) != 32 {
		return Zero, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidLength, len(b))
	}
	var z U256
	for i := 0; i < 4; i++ {
		z[3-i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return z, nil
}

// FromLittleEndian decodes exactly 32 bytes, least significant first.
func FromLittleEndian(b []byte) (U256, error) {
	if len(b) != 32 {
		return Zero, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidLength, len(b))
	}
	var z U256
	for i := 0; i < 4; i++ {
		z[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return z, nil
}

// ToBigEndian returns the 32-byte big-endian encoding, zero padded.
func (x U256) ToBigEndian() [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(b[i*8:], x[3-i])
	}
	return b
}

// ToLittleEndian returns the 32-byte little-endian encoding, zero padded.
func (x U256) ToLittleEndian() [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], x[i])
	}
	return b
}

// Limbs returns the little-endian limbs.
func (x U256) Limbs() [4]uint64 { return x }

// Uint64 returns the value as a uint64 and whether it fit.
func (x U256) Uint64() (uint64, bool) {
	return x[0], x.IsUint64()
}

// IsUint64 reports whether x fits in 64 bits.
func (x U256) IsUint64() bool { return x[1]|x[2]|x[3] == 0 }

// Uint32 returns the value as a uint32 and whether it fit. When it does not
// fit, the low 32 bits are returned.
func (x U256) Uint32() (uint32, bool) {
	return uint32(x[0]), x[0]>>32|x[1]|x[2]|x[3] == 0
}

// Uint128 returns the low 128 bits as (hi, lo) and whether the value fit.
func (x U256) Uint128() (hi, lo uint64, ok bool) {
	return x[1], x[0], x[2]|x[3] == 0
}

// IsZero reports whether x == 0.
func (x U256) IsZero() bool { return x[0]|x[1]|x[2]|x[3] == 0 }
