// Package merkle builds binary SHA-256 Merkle trees over chunked data so a
// single root can vouch for every chunk.
package merkle

import (
	"errors"

	"github.com/enzoblain/Cryptography/cryptography/sha256"
)

var (
	ErrEmpty         = errors.New("merkle: no leaves provided")
	ErrProofMismatch = errors.New("merkle: proof verification failed")
	ErrIndexRange    = errors.New("merkle: leaf index out of range")
)

// Domain prefixes keep a leaf hash from ever colliding with an interior
// node hash.
const (
	leafPrefix     = 0x00
	interiorPrefix = 0x01
)

// Tree is a complete binary tree stored as an array: node i has children
// 2i+1 and 2i+2, and the leaf nodes occupy the last half.
type Tree struct {
	leaves []sha256.Digest // as supplied by the caller
	width  int             // leaves after padding to a power of two
	nodes  []sha256.Digest
}

// Build constructs a tree from leaf digests. The leaf count is padded to a
// power of two with the digest of the empty string. A leaf node is
// H(0x00 || leaf) and an interior node is H(0x01 || left || right).
func Build(leaves []sha256.Digest) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmpty
	}

	width := 1
	for width < len(leaves) {
		width *= 2
	}
	nodes := make([]sha256.Digest, 2*width-1)
	pad := hashLeaf(sha256.Hash(nil))
	for i := 0; i < width; i++ {
		if i < len(leaves) {
			nodes[width-1+i] = hashLeaf(leaves[i])
		} else {
			nodes[width-1+i] = pad
		}
	}
	for i := width - 2; i >= 0; i-- {
		nodes[i] = hashPair(nodes[2*i+1], nodes[2*i+2])
	}

	return &Tree{
		leaves: append([]sha256.Digest(nil), leaves...),
		width:  width,
		nodes:  nodes,
	}, nil
}

func hashLeaf(leaf sha256.Digest) sha256.Digest {
	return sha256.SumMany([]byte{leafPrefix}, leaf[:])
}

func hashPair(left, right sha256.Digest) sha256.Digest {
	return sha256.SumMany([]byte{interiorPrefix}, left[:], right[:])
}

// Root returns the Merkle root.
func (t *Tree) Root() sha256.Digest { return t.nodes[0] }

// Len returns the number of leaves the tree was built from.
func (t *Tree) Len() int { return len(t.leaves) }

// Proof carries the sibling digests from a leaf up to the root.
type Proof struct {
	Index    int
	Leaf     sha256.Digest
	Siblings []sha256.Digest // leaf level first
	IsLeft   []bool          // true if the sibling sits on the left
}

// Proof returns the inclusion proof for leaf i.
func (t *Tree) Proof(i int) (Proof, error) {
	if i < 0 || i >= len(t.leaves) {
		return Proof{}, ErrIndexRange
	}

	var siblings []sha256.Digest
	var isLeft []bool
	idx := t.width - 1 + i
	for idx > 0 {
		sibling := idx + 1
		if idx%2 == 0 {
			sibling = idx - 1
		}
		siblings = append(siblings, t.nodes[sibling])
		isLeft = append(isLeft, idx%2 == 0)
		idx = (idx - 1) / 2
	}

	return Proof{
		Index:    i,
		Leaf:     t.leaves[i],
		Siblings: siblings,
		IsLeft:   isLeft,
	}, nil
}

// Verify recomputes the root from a proof and compares it to root. The
// sibling sides must spell out Index in binary, least significant bit at
// the leaf level, so a proof only verifies at the position it was made for.
func Verify(p Proof, root sha256.Digest) error {
	depth := len(p.Siblings)
	if depth != len(p.IsLeft) || depth >= 63 {
		return ErrProofMismatch
	}
	if p.Index < 0 || p.Index >= 1<<depth {
		return ErrProofMismatch
	}
	cur := hashLeaf(p.Leaf)
	for i, sibling := range p.Siblings {
		if p.IsLeft[i] != (p.Index>>i&1 == 1) {
			return ErrProofMismatch
		}
		if p.IsLeft[i] {
			cur = hashPair(sibling, cur)
		} else {
			cur = hashPair(cur, sibling)
		}
	}
	if cur != root {
		return ErrProofMismatch
	}
	return nil
}
