// Package cryptography is a small toolbox of cryptographic building blocks.
//
// The two core primitives live in their own packages and do not depend on
// each other:
//   - sha256: the FIPS 180-4 hash, one-shot and streaming
//   - u256: a fixed-width 256-bit unsigned integer with explicit overflow
//     policies
//
// kdf (HMAC, HKDF, PBKDF2) and merkle are built on top of sha256. This
// package only bridges the two cores, for callers that treat a digest as a
// number.
package cryptography
