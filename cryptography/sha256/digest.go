package sha256

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidDigest is returned when a hex digest is malformed.
var ErrInvalidDigest = errors.New("sha256: invalid digest")

// Digest is a SHA-256 output: the eight state words, big-endian.
type Digest [Size]byte

// ParseDigest decodes a 64-character hex string (either case).
func ParseDigest(s string) (Digest, error) {
	if err := ValidateHex(s); err != nil {
		return Digest{}, err
	}
	var d Digest
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return d, nil
}

// ValidateHex checks that s is a syntactically valid hex-encoded digest and
// explains why not otherwise.
func ValidateHex(s string) error {
	if len(s) != 2*Size {
		return fmt.Errorf("%w: expected %d characters, but have %d", ErrInvalidDigest, 2*Size, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return fmt.Errorf("%w: non-hexadecimal character %q at offset %d", ErrInvalidDigest, c, i)
		}
	}
	return nil
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// Hex returns the canonical lowercase hex form.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

func (d Digest) String() string { return d.Hex() }

// IsZero reports whether every byte of d is zero.
func (d Digest) IsZero() bool { return d == Digest{} }
