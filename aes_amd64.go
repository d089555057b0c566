//go:build amd64 && !purego

package cryptonight

import "golang.org/x/sys/cpu"

// hardwareAES is probed once at startup and never changes afterwards.
var hardwareAES = cpu.X86.HasAES

//go:nosplit
//go:noescape
func aes_rounds_internal(blocks *[16]uint64, roundKeys *[aesRounds * 4]uint32)

//go:nosplit
//go:noescape
func aes_single_round_internal(dst, src *[2]uint64, roundKey *[2]uint64)

//go:nosplit
func aes_rounds(blocks *[16]uint64, roundKeys *[aesRounds * 4]uint32) {
	if hardwareAES {
		aes_rounds_internal(blocks, roundKeys)
		return
	}
	aes_rounds_generic(blocks, roundKeys)
}

//go:nosplit
func aes_single_round(dst, src *[2]uint64, roundKey *[2]uint64) {
	if hardwareAES {
		aes_single_round_internal(dst, src, roundKey)
		return
	}
	aes_single_round_generic(dst, src, roundKey)
}
