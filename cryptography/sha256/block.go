//go:build !sha256unrolled

package sha256

// block is the compression function used by New. Build with the
// sha256unrolled tag to select blockUnrolled.
var block = blockGeneric
