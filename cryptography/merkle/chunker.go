package merkle

import (
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/enzoblain/Cryptography/cryptography/sha256"
)

// DefaultChunkSize is the leaf size used when none is given (256 KiB).
const DefaultChunkSize = 256 * 1024

// Split cuts data into chunkSize pieces; the last one may be shorter.
// The chunks alias data.
func Split(data []byte, chunkSize int) [][]byte {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var chunks [][]byte
	for i := 0; i < len(data); i += chunkSize {
		chunks = append(chunks, data[i:min(i+chunkSize, len(data))])
	}
	return chunks
}

// SplitReader reads r to EOF in chunkSize pieces.
func SplitReader(r io.Reader, chunkSize int) ([][]byte, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var chunks [][]byte
	for {
		buf := make([]byte, chunkSize)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunks = append(chunks, buf[:n])
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return chunks, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// HashLeaves hashes every chunk on up to workers goroutines
// (GOMAXPROCS when workers <= 0). Each goroutine owns its own Hasher.
func HashLeaves(ctx context.Context, chunks [][]byte, workers int) ([]sha256.Digest, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]sha256.Digest, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = sha256.Hash(chunks[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildFromChunks hashes chunks in parallel and builds the tree.
func BuildFromChunks(ctx context.Context, chunks [][]byte, workers int) (*Tree, error) {
	if len(chunks) == 0 {
		return nil, ErrEmpty
	}
	leaves, err := HashLeaves(ctx, chunks, workers)
	if err != nil {
		return nil, err
	}
	return Build(leaves)
}
