// Package cryptonight implements the CryptoNight v0 memory-hard hash
// function from the CryptoNote standard CNS008.
package cryptonight

import (
	"hash"

	"git.gammaspectra.live/P2Pool/cryptonight/utils"
	"golang.org/x/crypto/sha3"
)

const (
	// BlockSize Rate in bytes of the underlying Keccak-1600 sponge.
	BlockSize = 136
)

// Hasher Accumulates input incrementally and computes CryptoNight v0 digests.
// It implements hash.Hash. Not thread-safe. Must be created via New.
type Hasher struct {
	keccak hash.Hash

	state     [25]uint64
	blocks    [16]uint64
	roundKeys [aesRounds * 4]uint32
}

// New creates an empty CryptoNight v0 accumulator.
func New() *Hasher {
	return &Hasher{
		keccak: sha3.NewLegacyKeccak256(),
	}
}

// Write absorbs more input. It never fails.
func (h *Hasher) Write(p []byte) (n int, err error) {
	return utils.WriteNoEscape(h.keccak, p)
}

// Reset discards all absorbed input.
func (h *Hasher) Reset() {
	h.keccak.Reset()
}

// Size returns the number of bytes Sum appends, HashSize.
func (h *Hasher) Size() int {
	return HashSize
}

// BlockSize returns the sponge rate of the input stage.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum appends the CryptoNight digest of the absorbed input to b.
// The accumulator is left usable, more input can be written afterwards.
// A fresh 2 MiB scratchpad is allocated on every call; loops computing many
// digests should allocate one scratchpad and use SumWithBuffer instead.
func (h *Hasher) Sum(b []byte) []byte {
	sum := h.SumWithBuffer(AllocateScratchpad())
	return append(b, sum[:]...)
}

// SumWithBuffer computes the CryptoNight digest of the absorbed input using
// the caller-provided scratchpad.
//
// Computes Keccak-1600 of the input, then expands a 2 MiB scratchpad via
// 10-round AES from the first 32 bytes of the state, runs 524288 iterations
// of the memory-hard mixing loop, folds the scratchpad back into the state
// with a second AES key, permutes, and dispatches to BLAKE-256, Groestl-256,
// JH-256 or Skein-512-256 on the low two bits of the first state byte
// (CNS008 sections 3 to 6).
//
// scratchpad must be exactly ScratchpadSize bytes with its base address
// aligned to ScratchpadAlignment, as returned by AllocateScratchpad. Any
// other buffer is a programming error and panics before the buffer is
// touched. Prior contents of the scratchpad never affect the digest, every
// byte is overwritten before it is read.
func (h *Hasher) SumWithBuffer(scratchpad []byte) (sum Hash) {
	h.SumIntoWithBuffer(scratchpad, &sum)
	return sum
}

// SumIntoWithBuffer is SumWithBuffer writing the digest into sum directly.
func (h *Hasher) SumIntoWithBuffer(scratchpad []byte, sum *Hash) {
	pad := scratchpadWords(scratchpad)
	h.extractState(&h.state)
	h.sum(pad, sum[:])
}

// Sum computes the CryptoNight v0 digest of data in one shot.
func Sum(data []byte) Hash {
	return SumWithBuffer(data, AllocateScratchpad())
}

// SumWithBuffer computes the CryptoNight v0 digest of data in one shot,
// reusing the caller-provided scratchpad. Same buffer contract as
// Hasher.SumWithBuffer.
func SumWithBuffer(data, scratchpad []byte) Hash {
	h := New()
	_, _ = h.Write(data)
	return h.SumWithBuffer(scratchpad)
}
