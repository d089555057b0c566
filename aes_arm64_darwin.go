//go:build darwin && arm64 && !purego

package cryptonight

// Assume hardware AES is always present under darwin/arm64, as runtime
// detection is not possible there.
//
// See https://github.com/golang/go/issues/43046
var hardwareAES = true

//go:nosplit
//go:noescape
func aes_rounds_internal(blocks *[16]uint64, roundKeys *[aesRounds * 4]uint32)

//go:nosplit
//go:noescape
func aes_single_round_internal(dst, src *[2]uint64, roundKey *[2]uint64)

//go:nosplit
func aes_rounds(blocks *[16]uint64, roundKeys *[aesRounds * 4]uint32) {
	aes_rounds_internal(blocks, roundKeys)
}

//go:nosplit
func aes_single_round(dst, src *[2]uint64, roundKey *[2]uint64) {
	aes_single_round_internal(dst, src, roundKey)
}
