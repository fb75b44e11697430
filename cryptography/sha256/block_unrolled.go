package sha256

import "encoding/binary"

// blockUnrolled is blockGeneric with the rounds unrolled.
//
// The schedule lives in a 16-word ring and the rounds are unrolled by eight:
// instead of shifting the working variables after every round, each call
// receives them in rotated order, so only d and h are written.
func blockUnrolled(h *[8]uint32, p []byte) {
	var w [16]uint32

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for t := 0; t < 64; t += 8 {
			round(a, b, c, &d, e, f, g, &hh, k[t]+schedule(&w, t))
			round(hh, a, b, &c, d, e, f, &g, k[t+1]+schedule(&w, t+1))
			round(g, hh, a, &b, c, d, e, &f, k[t+2]+schedule(&w, t+2))
			round(f, g, hh, &a, b, c, d, &e, k[t+3]+schedule(&w, t+3))
			round(e, f, g, &hh, a, b, c, &d, k[t+4]+schedule(&w, t+4))
			round(d, e, f, &g, hh, a, b, &c, k[t+5]+schedule(&w, t+5))
			round(c, d, e, &f, g, hh, a, &b, k[t+6]+schedule(&w, t+6))
			round(b, c, d, &e, f, g, hh, &a, k[t+7]+schedule(&w, t+7))
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		p = p[BlockSize:]
	}
}

// schedule returns message word t, expanding the ring in place for t >= 16.
func schedule(w *[16]uint32, t int) uint32 {
	if t < 16 {
		return w[t]
	}
	v := sigma1(w[(t-2)&15]) + w[(t-7)&15] + sigma0(w[(t-15)&15]) + w[t&15]
	w[t&15] = v
	return v
}

func round(a, b, c uint32, d *uint32, e, f, g uint32, h *uint32, kw uint32) {
	t1 := *h + bigSigma1(e) + ch(e, f, g) + kw
	*d += t1
	*h = t1 + bigSigma0(a) + maj(a, b, c)
}
