package cryptography

import (
	"github.com/enzoblain/Cryptography/cryptography/sha256"
	"github.com/enzoblain/Cryptography/cryptography/u256"
)

// DigestToU256 reads a digest as a big-endian 256-bit integer.
func DigestToU256(d sha256.Digest) u256.U256 {
	z, _ := u256.FromBigEndian(d[:])
	return z
}

// U256ToDigest is the inverse of DigestToU256.
func U256ToDigest(x u256.U256) sha256.Digest {
	return sha256.Digest(x.ToBigEndian())
}

// HashToU256 hashes data and returns the digest as an integer.
func HashToU256(data []byte) u256.U256 {
	return DigestToU256(sha256.Hash(data))
}
