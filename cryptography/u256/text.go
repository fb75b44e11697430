package u256

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// decChunk is the largest power of ten that fits in a limb: 10^19.
	decChunk       = 10_000_000_000_000_000_000
	decChunkDigits = 19
)

// FromHex parses a hexadecimal string with an optional 0x or 0X prefix.
// Leading zeros are allowed; upper and lower case digits are accepted.
func FromHex(s string) (U256, error) {
	z, err := parseHex(s)
	if err != nil {
		return Zero, &ParseError{Func: "FromHex", Input: s, Err: err}
	}
	return z, nil
}

// FromDecimal parses an unsigned decimal string of ASCII digits.
func FromDecimal(s string) (U256, error) {
	z, err := parseDecimal(s)
	if err != nil {
		return Zero, &ParseError{Func: "FromDecimal", Input: s, Err: err}
	}
	return z, nil
}

// Parse reads s as hexadecimal when it carries a 0x prefix and as decimal
// otherwise.
func Parse(s string) (U256, error) {
	var (
		z   U256
		err error
	)
	if hasHexPrefix(s) {
		z, err = parseHex(s)
	} else {
		z, err = parseDecimal(s)
	}
	if err != nil {
		return Zero, &ParseError{Func: "Parse", Input: s, Err: err}
	}
	return z, nil
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func parseHex(s string) (U256, error) {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	if s == "" {
		return Zero, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return Zero, ErrInvalidDigit
		}
	}
	s = strings.TrimLeft(s, "0")
	if len(s) > 64 {
		return Zero, ErrOverflow
	}

	var z U256
	for i := 0; i < len(s); i++ {
		d, _ := hexDigit(s[len(s)-1-i])
		z[i/16] |= d << (4 * (i % 16))
	}
	return z, nil
}

func hexDigit(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

func parseDecimal(s string) (U256, error) {
	if s == "" {
		return Zero, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Zero, ErrInvalidDigit
		}
	}
	s = strings.TrimLeft(s, "0")

	var z U256
	for len(s) > 0 {
		n := min(decChunkDigits, len(s))
		chunk, err := strconv.ParseUint(s[:n], 10, 64)
		if err != nil {
			return Zero, ErrInvalidDigit
		}
		var carry uint64
		z, carry = mulAddLimb(z, pow10(n), chunk)
		if carry != 0 {
			return Zero, ErrOverflow
		}
		s = s[n:]
	}
	return z, nil
}

// mulAddLimb returns x*m + a and the limb carried out of the top.
func mulAddLimb(x U256, m, a uint64) (z U256, carry uint64) {
	carry = a
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(x[i], m)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return z, carry
}

func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// Hex returns the lowercase hex form with a 0x prefix and no leading
// zeros; Zero is "0x0".
func (x U256) Hex() string {
	top := 3
	for top > 0 && x[top] == 0 {
		top--
	}
	buf := make([]byte, 0, 2+64)
	buf = append(buf, "0x"...)
	buf = strconv.AppendUint(buf, x[top], 16)
	for i := top - 1; i >= 0; i-- {
		buf = appendPadded(buf, x[i], 16, 16)
	}
	return string(buf)
}

// Decimal returns the base-10 form without leading zeros.
func (x U256) Decimal() string {
	if x.IsUint64() {
		return strconv.FormatUint(x[0], 10)
	}
	// 2^256 has 78 decimal digits: at most five 19-digit chunks.
	var chunks [5]uint64
	n := 0
	for !x.IsZero() {
		x, chunks[n] = divRemLimb(x, decChunk)
		n++
	}
	buf := make([]byte, 0, 78)
	buf = strconv.AppendUint(buf, chunks[n-1], 10)
	for i := n - 2; i >= 0; i-- {
		buf = appendPadded(buf, chunks[i], 10, decChunkDigits)
	}
	return string(buf)
}

func appendPadded(buf []byte, v uint64, base, width int) []byte {
	s := strconv.FormatUint(v, base)
	for i := len(s); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}

// String returns the decimal form.
func (x U256) String() string { return x.Decimal() }

// MarshalText encodes x in its Hex form.
func (x U256) MarshalText() ([]byte, error) {
	return []byte(x.Hex()), nil
}

// UnmarshalText accepts either form understood by Parse.
func (x *U256) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = z
	return nil
}
