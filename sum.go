package cryptonight

import (
	"unsafe"

	"lukechampine.com/uint128"
)

const iterations = 1 << 19

// sum runs the CryptoNight v0 core (CNS008 sections 3 to 5) over an already
// derived Keccak state, leaving the digest in out. len(out) must be HashSize.
func (h *Hasher) sum(scratchpad []uint64, out []byte) {
	var a, b, c, d [2]uint64
	var addr uint32

	// CNS008 sec.3 Scratchpad Initialization
	aes_expand_key(h.state[:4], &h.roundKeys)
	copy(h.blocks[:], h.state[8:24])

	for i := 0; i < ScratchpadSize/8; i += 16 {
		aes_rounds(&h.blocks, &h.roundKeys)
		copy(scratchpad[i:i+16], h.blocks[:])
	}

	// CNS008 sec.4 Memory-Hard Loop
	a[0] = h.state[0] ^ h.state[4]
	a[1] = h.state[1] ^ h.state[5]
	b[0] = h.state[2] ^ h.state[6]
	b[1] = h.state[3] ^ h.state[7]

	for iter := 0; iter < iterations; iter++ {
		addr = uint32((a[0] & 0x1ffff0) >> 3)
		aes_single_round(&c, (*[2]uint64)(scratchpad[addr:]), &a)

		scratchpad[addr] = b[0] ^ c[0]
		scratchpad[addr+1] = b[1] ^ c[1]

		addr = uint32((c[0] & 0x1ffff0) >> 3)
		d[0] = scratchpad[addr]
		d[1] = scratchpad[addr+1]

		// 8byte_mul / 8byte_add: high half of the product lands on a[0]
		product := uint128.From64(c[0]).Mul64(d[0])
		a[0] += product.Hi
		a[1] += product.Lo

		scratchpad[addr] = a[0]
		scratchpad[addr+1] = a[1]

		a[0] ^= d[0]
		a[1] ^= d[1]

		b = c
	}

	// CNS008 sec.5 Result Calculation
	aes_expand_key(h.state[4:8], &h.roundKeys)
	copy(h.blocks[:], h.state[8:24])

	for i := 0; i < ScratchpadSize/8; i += 16 {
		for j := range h.blocks {
			h.blocks[j] ^= scratchpad[i+j]
		}
		aes_rounds(&h.blocks, &h.roundKeys)
	}
	copy(h.state[8:24], h.blocks[:])

	keccakF1600(&h.state)

	// #nosec G103 -- fixed 200-byte view
	stateBytes := unsafe.Slice((*byte)(unsafe.Pointer(&h.state)), len(h.state)*8)
	finalHash(uint8(h.state[0]), stateBytes, out)
}
