package cryptonight

import (
	"hash"
	"io"
	"unsafe"

	"git.gammaspectra.live/P2Pool/cryptonight/utils"
	_ "golang.org/x/crypto/sha3"
)

//go:noescape
//go:linkname keccakF1600 golang.org/x/crypto/sha3.keccakF1600
func keccakF1600(a *[25]uint64)

type genericInterface struct {
	_type uintptr
	data  unsafe.Pointer
}

// keccakSponge mirrors the private layout of golang.org/x/crypto/sha3.state
// at the pinned v0.22.0 (sha3/sha3.go), so the full 1600-bit sponge can be
// lifted out of a hash.Hash. Needs to be re-checked whenever x/crypto is
// bumped.
//
// The real storageBuf is [21]uint64 on 386/amd64/ppc64le without purego and
// [168]byte elsewhere, which shifts its own offset by the alignment padding;
// storage here is sized to cover either variant so that outputLen and state
// keep the same offsets on every 64-bit target. buf points into storage, so
// copying the struct keeps the slice header valid as long as it is written
// back to the same sponge.
type keccakSponge struct {
	a    [25]uint64
	buf  []byte
	rate int

	dsbyte  byte
	storage [175]byte

	outputLen int
	state     int
}

func keccakSpongeRef(h hash.Hash) *keccakSponge {
	// #nosec G103 -- layout checked against the pinned sha3 implementation
	return (*keccakSponge)((*genericInterface)(unsafe.Pointer(&h)).data)
}

// extractState pads the absorbed input and applies the permutation, copying
// the resulting 200-byte sponge state out. The whole sponge is restored
// afterwards, including the padding scratch and the absorbing/squeezing
// direction flag, so the accumulator keeps accepting writes and Sum stays
// non-destructive as hash.Hash requires.
func (h *Hasher) extractState(state *[25]uint64) {
	sponge := keccakSpongeRef(h.keccak)
	saved := *sponge

	// zero-length read still forces pad and permute
	_, _ = utils.ReadNoEscape(h.keccak.(io.Reader), nil)

	*state = sponge.a

	*sponge = saved
}
