//go:build !(amd64 || arm64) || purego

package cryptonight

const hardwareAES = false

func aes_rounds(blocks *[16]uint64, roundKeys *[aesRounds * 4]uint32) {
	aes_rounds_generic(blocks, roundKeys)
}

func aes_single_round(dst, src *[2]uint64, roundKey *[2]uint64) {
	aes_single_round_generic(dst, src, roundKey)
}
