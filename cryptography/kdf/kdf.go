// Package kdf derives keys from secrets using this module's SHA-256:
// HMAC-SHA256, HKDF-SHA256 (RFC 5869) and PBKDF2-HMAC-SHA256 (RFC 8018).
package kdf

import (
	"crypto/hmac"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/enzoblain/Cryptography/cryptography/sha256"
)

// MaxHKDFLength is the most output HKDF-SHA256 can expand to (255 blocks).
const MaxHKDFLength = 255 * sha256.Size

var (
	ErrInvalidLength     = errors.New("kdf: invalid output length")
	ErrInvalidIterations = errors.New("kdf: iteration count must be positive")
)

// HMAC returns HMAC-SHA256(key, msg).
func HMAC(key, msg []byte) sha256.Digest {
	mac := hmac.New(sha256.NewHash, key)
	mac.Write(msg)
	var out sha256.Digest
	copy(out[:], mac.Sum(nil))
	return out
}

// Extract is the HKDF extract step. A nil salt is treated as a zero salt.
func Extract(secret, salt []byte) sha256.Digest {
	var prk sha256.Digest
	copy(prk[:], hkdf.Extract(sha256.NewHash, secret, salt))
	return prk
}

// Expand is the HKDF expand step; info binds the output to a context.
func Expand(prk sha256.Digest, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > MaxHKDFLength {
		return nil, ErrInvalidLength
	}
	return read(hkdf.Expand(sha256.NewHash, prk[:], info), length)
}

// DeriveKey runs extract and expand in one call.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > MaxHKDFLength {
		return nil, ErrInvalidLength
	}
	return read(hkdf.New(sha256.NewHash, secret, salt, info), length)
}

func read(r io.Reader, length int) ([]byte, error) {
	key := make([]byte, length)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKeyPair derives two 32-byte directional keys from a shared secret.
// Both party identifiers go into the HKDF info to bind the keys to this pair.
// Returns: (key for a → b, key for b → a)
func DeriveKeyPair(secret []byte, label string, a, b [32]byte) ([]byte, []byte, error) {
	info := make([]byte, 0, len(label)+64)
	info = append(info, label...)
	info = append(info, a[:]...)
	info = append(info, b[:]...)

	keyMaterial, err := DeriveKey(secret, nil, info, 64)
	if err != nil {
		return nil, nil, err
	}
	return keyMaterial[:32:32], keyMaterial[32:64:64], nil
}

// PBKDF2 stretches a password with PBKDF2-HMAC-SHA256.
func PBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	if keyLen <= 0 {
		return nil, ErrInvalidLength
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.NewHash), nil
}
