package u256

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t testing.TB, s string) U256 {
	t.Helper()
	x, err := FromHex(s)
	require.NoError(t, err)
	return x
}

func TestAddEdges(t *testing.T) {
	_, ok := Max.CheckedAdd(One)
	assert.False(t, ok)
	assert.Equal(t, Zero, Max.WrappingAdd(One))
	z, overflow := Max.OverflowingAdd(One)
	assert.True(t, overflow)
	assert.Equal(t, Zero, z)
	assert.Equal(t, Max, Max.SaturatingAdd(One))

	// Carry ripples through every limb.
	x := FromLimbs([4]uint64{^uint64(0), ^uint64(0), ^uint64(0), 0})
	sum, ok := x.CheckedAdd(One)
	require.True(t, ok)
	assert.Equal(t, FromLimbs([4]uint64{0, 0, 0, 1}), sum)
}

func TestSubEdges(t *testing.T) {
	_, ok := Zero.CheckedSub(One)
	assert.False(t, ok)
	assert.Equal(t, Max, Zero.WrappingSub(One))
	z, overflow := Zero.OverflowingSub(One)
	assert.True(t, overflow)
	assert.Equal(t, Max, z)
	assert.Equal(t, Zero, FromUint64(3).SaturatingSub(FromUint64(5)))
	assert.Equal(t, FromUint64(2), FromUint64(5).SaturatingSub(FromUint64(3)))
}

func TestMulEdges(t *testing.T) {
	two := FromUint64(2)
	_, ok := Max.CheckedMul(two)
	assert.False(t, ok)
	assert.Equal(t, Max.WrappingSub(One), Max.WrappingMul(two))
	assert.Equal(t, Max, Max.SaturatingMul(two))
	assert.Equal(t, Zero, Max.SaturatingMul(Zero))

	// 2^128 * 2^128 = 2^256 wraps to zero.
	half := One.ShiftLeft(128)
	z, overflow := half.OverflowingMul(half)
	assert.True(t, overflow)
	assert.Equal(t, Zero, z)

	// (2^128 - 1)^2 fits.
	m := half.WrappingSub(One)
	sq, ok := m.CheckedMul(m)
	require.True(t, ok)
	assert.Equal(t, mustHex(t, "0xfffffffffffffffffffffffffffffffe00000000000000000000000000000001"), sq)
}

func TestAlgebra(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		a, b, c := randU256(r), randU256(r), randU256(r)

		require.Equal(t, a.WrappingAdd(b), b.WrappingAdd(a))
		require.Equal(t, a.WrappingAdd(b).WrappingAdd(c), a.WrappingAdd(b.WrappingAdd(c)))
		require.Equal(t, a, a.WrappingAdd(Zero))
		require.Equal(t, a.WrappingMul(b), b.WrappingMul(a))
		require.Equal(t, a, a.WrappingMul(One))
		require.Equal(t, a, a.WrappingAdd(b).WrappingSub(b))

		_, ok := a.CheckedAdd(b)
		_, overflow := a.OverflowingAdd(b)
		require.Equal(t, !ok, overflow)
		_, ok = a.CheckedSub(b)
		_, overflow = a.OverflowingSub(b)
		require.Equal(t, !ok, overflow)
		_, ok = a.CheckedMul(b)
		_, overflow = a.OverflowingMul(b)
		require.Equal(t, !ok, overflow)
	}
}

// Every policy is checked against math/big on the same operands.
func TestArithmeticMatchesBig(t *testing.T) {
	type op struct {
		name  string
		big   func(z, x, y *big.Int) *big.Int
		over  func(x, y U256) (U256, bool)
		check func(x, y U256) (U256, bool)
		wrap  func(x, y U256) U256
		sat   func(x, y U256) U256
		clamp U256
	}
	ops := []op{
		{"add", (*big.Int).Add, U256.OverflowingAdd, U256.CheckedAdd, U256.WrappingAdd, U256.SaturatingAdd, Max},
		{"sub", (*big.Int).Sub, U256.OverflowingSub, U256.CheckedSub, U256.WrappingSub, U256.SaturatingSub, Zero},
		{"mul", (*big.Int).Mul, U256.OverflowingMul, U256.CheckedMul, U256.WrappingMul, U256.SaturatingMul, Max},
	}

	r := newRand()
	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				x, y := randU256(r), randU256(r)
				exact := o.big(new(big.Int), x.ToBig(), y.ToBig())
				fits := exact.Sign() >= 0 && exact.BitLen() <= 256
				wrapped, _ := FromBig(new(big.Int).Mod(exact, two256))

				got, overflow := o.over(x, y)
				require.Equal(t, wrapped, got)
				require.Equal(t, !fits, overflow)
				require.Equal(t, wrapped, o.wrap(x, y))

				checked, ok := o.check(x, y)
				require.Equal(t, fits, ok)
				if fits {
					require.Equal(t, wrapped, checked)
					require.Equal(t, wrapped, o.sat(x, y))
				} else {
					require.Equal(t, o.clamp, o.sat(x, y))
				}
			}
		})
	}
}

func TestArithmeticMatchesUint256(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		x, y := randU256(r), randU256(r)
		hx, hy := x.Uint256(), y.Uint256()

		sum, carry := new(uint256.Int).AddOverflow(hx, hy)
		got, overflow := x.OverflowingAdd(y)
		require.Equal(t, FromUint256(sum), got)
		require.Equal(t, carry, overflow)

		diff, borrow := new(uint256.Int).SubOverflow(hx, hy)
		got, overflow = x.OverflowingSub(y)
		require.Equal(t, FromUint256(diff), got)
		require.Equal(t, borrow, overflow)

		prod, mulOver := new(uint256.Int).MulOverflow(hx, hy)
		got, overflow = x.OverflowingMul(y)
		require.Equal(t, FromUint256(prod), got)
		require.Equal(t, mulOver, overflow)
	}
}

func BenchmarkWrappingMul(b *testing.B) {
	x := mustHex(b, "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef")
	y := mustHex(b, "0xfedcba0987654321fedcba0987654321")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x = x.WrappingMul(y)
	}
	sinkU256 = x
}

var sinkU256 U256
