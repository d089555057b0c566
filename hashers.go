package cryptonight

import (
	"git.gammaspectra.live/P2Pool/cryptonight/internal/blake256"
	"git.gammaspectra.live/P2Pool/cryptonight/internal/groestl"
	"git.gammaspectra.live/P2Pool/cryptonight/internal/jh"
	"git.gammaspectra.live/P2Pool/cryptonight/internal/skein"
)

// finalHash feeds the 200-byte post-permutation state to one of the four
// CNS008 finalization functions, selected by the two low bits of the first
// state byte, and writes the 32-byte digest into out.
func finalHash(i uint8, data []byte, out []byte) {
	switch i & 0x3 {
	case 0:
		var digest blake256.Digest
		digest.HashSize = blake256.Size * 8
		digest.Reset()
		_, _ = digest.Write(data)
		digest.Sum(out[:0])
	case 1:
		var digest groestl.Digest
		digest.HashBitLen = 256
		digest.Reset()
		_, _ = digest.Write(data)
		digest.Sum(out[:0])
	case 2:
		var digest jh.Digest
		digest.Reset()
		_, _ = digest.Write(data)
		digest.Sum(out[:0])
	case 3:
		skein.Sum256((*[32]byte)(out), data, nil)
	}
}
