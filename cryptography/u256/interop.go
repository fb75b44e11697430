package u256

import (
	"math/big"

	"github.com/holiman/uint256"
)

// FromBig converts b, reporting false if it is negative or wider than 256
// bits.
func FromBig(b *big.Int) (U256, bool) {
	if b.Sign() < 0 || b.BitLen() > 256 {
		return Zero, false
	}
	var buf [32]byte
	b.FillBytes(buf[:])
	z, _ := FromBigEndian(buf[:])
	return z, true
}

func (x U256) ToBig() *big.Int {
	b := x.ToBigEndian()
	return new(big.Int).SetBytes(b[:])
}

// FromUint256 converts from github.com/holiman/uint256, which shares the
// little-endian limb layout.
func FromUint256(v *uint256.Int) U256 {
	return U256(*v)
}

func (x U256) Uint256() *uint256.Int {
	v := uint256.Int(x)
	return &v
}
