//go:build (amd64 || arm64) && !purego

package cryptonight

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// Hardware and table-based round functions must be bit-identical on
// arbitrary inputs, both for the single mixing round and for the full
// 10-round block group.
func TestAESRoundsHardware(t *testing.T) {
	if !hardwareAES {
		t.Skip("hardware AES not available")
	}

	randomWords := func(dst []uint64) {
		var buf [8]byte
		for i := range dst {
			_, _ = rand.Read(buf[:])
			dst[i] = binary.LittleEndian.Uint64(buf[:])
		}
	}

	for iter := 0; iter < 256; iter++ {
		var key [4]uint64
		randomWords(key[:])

		var roundKeys [aesRounds * 4]uint32
		aes_expand_key(key[:], &roundKeys)

		var blocks, blocksGeneric [16]uint64
		randomWords(blocks[:])
		blocksGeneric = blocks

		aes_rounds_internal(&blocks, &roundKeys)
		aes_rounds_generic(&blocksGeneric, &roundKeys)
		require.Equal(t, blocksGeneric, blocks)

		var src, roundKey, dst, dstGeneric [2]uint64
		randomWords(src[:])
		randomWords(roundKey[:])

		aes_single_round_internal(&dst, &src, &roundKey)
		aes_single_round_generic(&dstGeneric, &src, &roundKey)
		require.Equal(t, dstGeneric, dst)
	}
}
