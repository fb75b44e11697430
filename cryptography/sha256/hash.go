package sha256

import "hash"

// hashAdapter exposes a Hasher as a hash.Hash. Sum works on a copy, so the
// underlying Hasher never leaves the absorbing state.
type hashAdapter struct {
	d Hasher
}

var _ hash.Hash = (*hashAdapter)(nil)

// NewHash returns a hash.Hash computing SHA-256 with this package's Hasher.
func NewHash() hash.Hash {
	return &hashAdapter{d: *New()}
}

func (a *hashAdapter) Write(p []byte) (int, error) { return a.d.Write(p) }

func (a *hashAdapter) Sum(b []byte) []byte {
	c := a.d
	sum, _ := c.Finalize()
	return append(b, sum[:]...)
}

func (a *hashAdapter) Reset() { a.d.reset() }

func (a *hashAdapter) Size() int { return Size }

func (a *hashAdapter) BlockSize() int { return BlockSize }
