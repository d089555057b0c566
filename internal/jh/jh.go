// Package jh implements the JH-256 hash function (SHA-3 finalist).
package jh

import "encoding/binary"

// Size The size of a JH-256 checksum in bytes.
const Size = 32

// BlockSize The block size of JH in bytes.
const BlockSize = 64

// Digest JH-256 state: a 1024-bit hash value plus a partial input block.
type Digest struct {
	h      [128]byte
	bitlen uint64
	buf    [BlockSize]byte
	nbuf   int
}

func New256() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset sets the hash value to the JH-256 initial value: H(-1) carries the
// digest bit length in its first two bytes and H(0) is obtained by
// compressing an all-zero block on top of it.
func (d *Digest) Reset() {
	*d = Digest{}
	binary.BigEndian.PutUint16(d.h[:2], Size*8)
	f8(&d.h, &d.buf)
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.bitlen += uint64(len(p)) << 3

	if d.nbuf > 0 {
		nn := copy(d.buf[d.nbuf:], p)
		d.nbuf += nn
		if d.nbuf == BlockSize {
			f8(&d.h, &d.buf)
			d.nbuf = 0
		}
		p = p[nn:]
	}
	for len(p) >= BlockSize {
		f8(&d.h, (*[BlockSize]byte)(p))
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return
}

// Sum appends the checksum, the last 32 bytes of the final hash value.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d

	// pad with a 1 bit, zeros, and the 128-bit message length; input that
	// filled its last block exactly gets a single whole padding block
	var blk [BlockSize]byte
	if d0.bitlen%(BlockSize*8) == 0 {
		blk[0] = 0x80
		binary.BigEndian.PutUint64(blk[56:], d0.bitlen)
		f8(&d0.h, &blk)
	} else {
		copy(blk[:], d0.buf[:d0.nbuf])
		blk[d0.nbuf] = 0x80
		f8(&d0.h, &blk)
		blk = [BlockSize]byte{}
		binary.BigEndian.PutUint64(blk[56:], d0.bitlen)
		f8(&d0.h, &blk)
	}

	return append(in, d0.h[96:]...)
}

// Sum256 computes the JH-256 checksum of data.
func Sum256(data []byte) (sum [Size]byte) {
	var d Digest
	d.Reset()
	_, _ = d.Write(data)
	d.Sum(sum[:0])
	return
}

// f8 compression: xor the block into the first half of the hash value, run
// the E8 permutation, xor the block into the second half.
func f8(h *[128]byte, block *[BlockSize]byte) {
	for i := range block {
		h[i] ^= block[i]
	}
	e8(h)
	for i := range block {
		h[i+64] ^= block[i]
	}
}
