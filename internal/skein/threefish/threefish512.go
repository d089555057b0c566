// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package threefish

import "math/bits"

const rounds512 = 72

// Mix rotation distances of Threefish-512, Skein 1.3 table 4.
var rot512 = [8][4]int{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// Encrypt512 encrypts one 512-bit block in place. keys holds the eight key
// words with keys[8] already set to C240 xor the others, tweak holds the two
// tweak words with tweak[2] = tweak[0] ^ tweak[1].
func Encrypt512(keys *[9]uint64, tweak *[3]uint64, block *[8]uint64) {
	b := *block

	for r := 0; r < rounds512; r++ {
		if r%4 == 0 {
			s := r / 4
			for i := range b {
				b[i] += keys[(s+i)%9]
			}
			b[5] += tweak[s%3]
			b[6] += tweak[(s+1)%3]
			b[7] += uint64(s)
		}

		rot := &rot512[r%8]
		for j := 0; j < 4; j++ {
			x0, x1 := b[2*j], b[2*j+1]
			x0 += x1
			x1 = bits.RotateLeft64(x1, rot[j]) ^ x0
			b[2*j], b[2*j+1] = x0, x1
		}

		b = [8]uint64{b[2], b[1], b[4], b[7], b[6], b[5], b[0], b[3]}
	}

	const s = rounds512 / 4
	for i := range b {
		b[i] += keys[(s+i)%9]
	}
	b[5] += tweak[s%3]
	b[6] += tweak[(s+1)%3]
	b[7] += uint64(s)

	*block = b
}

// UBI512 updates hVal with one message block in Unique Block Iteration
// chaining mode. The extended key word and tweak parity word are derived
// here, block is left holding the ciphertext.
func UBI512(block *[8]uint64, hVal *[9]uint64, tweak *[3]uint64) {
	message := *block

	hVal[8] = C240 ^ hVal[0] ^ hVal[1] ^ hVal[2] ^ hVal[3] ^ hVal[4] ^ hVal[5] ^ hVal[6] ^ hVal[7]
	tweak[2] = tweak[0] ^ tweak[1]

	Encrypt512(hVal, tweak, block)

	for i := range message {
		hVal[i] = block[i] ^ message[i]
	}
}
