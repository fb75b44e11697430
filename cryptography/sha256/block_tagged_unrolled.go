//go:build sha256unrolled

package sha256

var block = blockUnrolled
