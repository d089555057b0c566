// Written in 2011-2012 by Dmitry Chestnykh.
//
// To the extent possible under law, the author have dedicated all copyright
// and related and neighboring rights to this software to the public domain
// worldwide. This software is distributed without any warranty.
// http://creativecommons.org/publicdomain/zero/1.0/

package blake256

import (
	"encoding/binary"
	"math/bits"
)

// Message word permutation schedule, reused cyclically after round 10.
var sigma = [10][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// First digits of pi.
var cst = [16]uint32{
	0x243F6A88, 0x85A308D3, 0x13198A2E, 0x03707344,
	0xA4093822, 0x299F31D0, 0x082EFA98, 0xEC4E6C89,
	0x452821E6, 0x38D01377, 0xBE5466CF, 0x34E90C6C,
	0xC0AC29B7, 0xC97C50DD, 0x3F84D5B5, 0xB5470917,
}

func g(v *[16]uint32, a, b, c, d int, mx, my uint32) {
	v[a] += v[b] + mx
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -12)
	v[a] += v[b] + my
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -7)
}

func block(d *Digest, p []byte) {
	for len(p) >= BlockSize {
		var m [16]uint32
		for i := range m {
			m[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		var v [16]uint32
		copy(v[:8], d.h[:])
		v[8] = d.s[0] ^ cst[0]
		v[9] = d.s[1] ^ cst[1]
		v[10] = d.s[2] ^ cst[2]
		v[11] = d.s[3] ^ cst[3]
		v[12] = cst[4]
		v[13] = cst[5]
		v[14] = cst[6]
		v[15] = cst[7]

		d.t += 512
		if !d.nullt {
			v[12] ^= uint32(d.t)
			v[13] ^= uint32(d.t)
			v[14] ^= uint32(d.t >> 32)
			v[15] ^= uint32(d.t >> 32)
		}

		for r := 0; r < 14; r++ {
			s := &sigma[r%10]
			g(&v, 0, 4, 8, 12, m[s[0]]^cst[s[1]], m[s[1]]^cst[s[0]])
			g(&v, 1, 5, 9, 13, m[s[2]]^cst[s[3]], m[s[3]]^cst[s[2]])
			g(&v, 2, 6, 10, 14, m[s[4]]^cst[s[5]], m[s[5]]^cst[s[4]])
			g(&v, 3, 7, 11, 15, m[s[6]]^cst[s[7]], m[s[7]]^cst[s[6]])
			g(&v, 0, 5, 10, 15, m[s[8]]^cst[s[9]], m[s[9]]^cst[s[8]])
			g(&v, 1, 6, 11, 12, m[s[10]]^cst[s[11]], m[s[11]]^cst[s[10]])
			g(&v, 2, 7, 8, 13, m[s[12]]^cst[s[13]], m[s[13]]^cst[s[12]])
			g(&v, 3, 4, 9, 14, m[s[14]]^cst[s[15]], m[s[15]]^cst[s[14]])
		}

		for i := 0; i < 8; i++ {
			d.h[i] ^= d.s[i%4] ^ v[i] ^ v[i+8]
		}

		p = p[BlockSize:]
	}
}
