package jh

// E8 expressed over 256 4-bit elements, following the reference
// implementation of the JH specification section 2.

var sbox = [2][16]byte{
	{9, 0, 4, 11, 13, 12, 3, 15, 1, 10, 2, 6, 7, 5, 8, 14},
	{3, 12, 6, 13, 5, 7, 1, 9, 15, 2, 0, 4, 11, 10, 14, 8},
}

// mul2 multiplication by 2 in GF(2^4), modulo x⁴ + x + 1
func mul2(x byte) byte {
	return ((x << 1) & 0xf) ^ (((x >> 3) & 1) * 3)
}

// roundConstantZero The first E8 round constant,
// 0x6a09e667f3bcc908b2fb1366ea957d3e3adec17512775099da2f590b0667322a as
// 64 4-bit elements.
var roundConstantZero = [64]byte{
	0x6, 0xa, 0x0, 0x9, 0xe, 0x6, 0x6, 0x7, 0xf, 0x3, 0xb, 0xc, 0xc, 0x9, 0x0, 0x8,
	0xb, 0x2, 0xf, 0xb, 0x1, 0x3, 0x6, 0x6, 0xe, 0xa, 0x9, 0x5, 0x7, 0xd, 0x3, 0xe,
	0x3, 0xa, 0xd, 0xe, 0xc, 0x1, 0x7, 0x5, 0x1, 0x2, 0x7, 0x7, 0x5, 0x0, 0x9, 0x9,
	0xd, 0xa, 0x2, 0xf, 0x5, 0x9, 0x0, 0xb, 0x0, 0x6, 0x6, 0x7, 0x3, 0x2, 0x2, 0xa,
}

// roundConstants for the 42 rounds; constant r+1 is constant r run through
// one round of the dimension-6 permutation with an all-zero constant.
var roundConstants = func() (rc [42][64]byte) {
	rc[0] = roundConstantZero
	for r := 1; r < len(rc); r++ {
		var tem [64]byte
		for i, x := range rc[r-1] {
			tem[i] = sbox[0][x]
		}
		for i := 0; i < 64; i += 2 {
			tem[i+1] ^= mul2(tem[i])
			tem[i] ^= mul2(tem[i+1])
		}
		for i := 0; i < 64; i += 4 {
			tem[i+2], tem[i+3] = tem[i+3], tem[i+2]
		}
		out := &rc[r]
		for i := 0; i < 32; i++ {
			out[i] = tem[i<<1]
			out[i+32] = tem[i<<1|1]
		}
		for i := 32; i < 64; i += 2 {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	return rc
}()

// group gathers bits i, i+256, i+512 and i+768 of the hash value into 4-bit
// elements, then interleaves the two halves.
func group(h *[128]byte, a *[256]byte) {
	var tem [256]byte
	for i := range tem {
		shift := 7 - (i & 7)
		tem[i] = (h[i>>3]>>shift&1)<<3 |
			(h[(i+256)>>3]>>shift&1)<<2 |
			(h[(i+512)>>3]>>shift&1)<<1 |
			(h[(i+768)>>3] >> shift & 1)
	}
	for i := 0; i < 128; i++ {
		a[i<<1] = tem[i]
		a[i<<1|1] = tem[i+128]
	}
}

// degroup is the inverse of group.
func degroup(a *[256]byte, h *[128]byte) {
	var tem [256]byte
	for i := 0; i < 128; i++ {
		tem[i] = a[i<<1]
		tem[i+128] = a[i<<1|1]
	}
	*h = [128]byte{}
	for i := range tem {
		shift := 7 - (i & 7)
		h[i>>3] |= (tem[i] >> 3 & 1) << shift
		h[(i+256)>>3] |= (tem[i] >> 2 & 1) << shift
		h[(i+512)>>3] |= (tem[i] >> 1 & 1) << shift
		h[(i+768)>>3] |= (tem[i] & 1) << shift
	}
}

// round8 One round of the dimension-8 permutation: sbox layer selected by
// the round constant bits, linear layer on pairs, then the permutation P8.
func round8(a *[256]byte, rc *[64]byte) {
	var tem [256]byte
	for i := range tem {
		sel := rc[i>>2] >> (3 - (i & 3)) & 1
		tem[i] = sbox[sel][a[i]]
	}
	for i := 0; i < 256; i += 2 {
		tem[i+1] ^= mul2(tem[i])
		tem[i] ^= mul2(tem[i+1])
	}
	for i := 0; i < 256; i += 4 {
		tem[i+2], tem[i+3] = tem[i+3], tem[i+2]
	}
	for i := 0; i < 128; i++ {
		a[i] = tem[i<<1]
		a[i+128] = tem[i<<1|1]
	}
	for i := 128; i < 256; i += 2 {
		a[i], a[i+1] = a[i+1], a[i]
	}
}

func e8(h *[128]byte) {
	var a [256]byte
	group(h, &a)
	for r := range roundConstants {
		round8(&a, &roundConstants[r])
	}
	degroup(&a, h)
}
