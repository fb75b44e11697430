// Package sha256 implements the SHA-256 hash function defined in FIPS 180-4.
//
// Two ways to use it:
//   - one-shot: Hash(data) returns the 32-byte Digest
//   - streaming: New() returns a Hasher; Absorb any number of chunks, then
//     Finalize exactly once
//
// A Hasher is a state machine owned by a single caller. It does no locking;
// share Digests, not Hashers. Once finalized, further Absorb or Finalize
// calls fail with ErrAlreadyFinalized.
//
// NewHash adapts the Hasher to the standard hash.Hash interface so it can be
// plugged into crypto/hmac, HKDF and PBKDF2.
//
// The compression function has two builds with identical output: the default
// loop, and a round-unrolled variant selected with the sha256unrolled build
// tag.
package sha256
