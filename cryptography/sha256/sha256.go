package sha256

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// Size is the length of a digest in bytes.
	Size = 32
	// BlockSize is the length of one compression block in bytes.
	BlockSize = 64
)

// ErrAlreadyFinalized is matched by every error returned from a Hasher that
// has already produced its digest.
var ErrAlreadyFinalized = errors.New("sha256: hasher already finalized")

// MisuseError reports an operation attempted on a finalized Hasher.
type MisuseError struct {
	Op string
}

func (e *MisuseError) Error() string {
	return "sha256: " + e.Op + " called after finalize"
}

func (e *MisuseError) Unwrap() error { return ErrAlreadyFinalized }

// Initial hash values: fractional parts of the square roots of the first
// eight primes.
var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Round constants: fractional parts of the cube roots of the first 64 primes.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type state uint8

const (
	stateAbsorbing state = iota
	stateFinalized
)

// Hasher is an incremental SHA-256 computation.
// The zero value is not usable; call New.
type Hasher struct {
	compress func(h *[8]uint32, p []byte)
	h        [8]uint32
	buf      [BlockSize]byte
	nbuf     int
	total    uint64
	state    state
}

// New returns a Hasher in the initial state.
func New() *Hasher {
	return newHasher(block)
}

func newHasher(compress func(h *[8]uint32, p []byte)) *Hasher {
	d := &Hasher{compress: compress}
	d.reset()
	return d
}

func (d *Hasher) reset() {
	d.h = initState
	d.nbuf = 0
	d.total = 0
	d.state = stateAbsorbing
}

// Absorb appends p to the message. Complete blocks are compressed right away;
// a partial block stays buffered until more input or Finalize arrives.
func (d *Hasher) Absorb(p []byte) error {
	if d.state != stateAbsorbing {
		return &MisuseError{Op: "absorb"}
	}
	d.total += uint64(len(p))

	if d.nbuf > 0 {
		n := copy(d.buf[d.nbuf:], p)
		d.nbuf += n
		p = p[n:]
		if d.nbuf < BlockSize {
			return nil
		}
		d.compress(&d.h, d.buf[:])
		d.nbuf = 0
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		d.compress(&d.h, p[:n])
		p = p[n:]
	}
	d.nbuf = copy(d.buf[:], p)
	return nil
}

// Write implements io.Writer on top of Absorb.
func (d *Hasher) Write(p []byte) (int, error) {
	if err := d.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads the message, compresses the last block(s) and returns the
// digest. The Hasher cannot be used afterwards.
func (d *Hasher) Finalize() (Digest, error) {
	if d.state != stateAbsorbing {
		return Digest{}, &MisuseError{Op: "finalize"}
	}
	d.state = stateFinalized

	var tail [2 * BlockSize]byte
	n := copy(tail[:], d.buf[:d.nbuf])
	tail[n] = 0x80

	// 0x80 plus the 8-byte length must fit behind the remainder.
	end := BlockSize
	if n >= BlockSize-8 {
		end = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(tail[end-8:end], d.total<<3)
	d.compress(&d.h, tail[:end])

	var out Digest
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	d.nbuf = 0
	return out, nil
}

// Finalized reports whether Finalize has already been called.
func (d *Hasher) Finalized() bool { return d.state == stateFinalized }

// Len returns the number of bytes absorbed so far, modulo 2^64.
func (d *Hasher) Len() uint64 { return d.total }

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) Digest {
	d := New()
	_ = d.Absorb(data)
	sum, _ := d.Finalize()
	return sum
}

// SumMany returns the digest of the concatenation of all arguments.
func SumMany(first []byte, rest ...[]byte) Digest {
	d := New()
	_ = d.Absorb(first)
	for _, p := range rest {
		_ = d.Absorb(p)
	}
	sum, _ := d.Finalize()
	return sum
}

// HashReader streams r to EOF and returns its digest.
func HashReader(r io.Reader) (Digest, error) {
	d := New()
	if _, err := io.Copy(d, r); err != nil {
		return Digest{}, err
	}
	return d.Finalize()
}
