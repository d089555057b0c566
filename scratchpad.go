package cryptonight

import "unsafe"

const (
	// ScratchpadSize Size in bytes of the scratchpad the memory-hard loop
	// walks over, 2 MiB.
	ScratchpadSize = 2 * 1024 * 1024

	// ScratchpadAlignment Required base address alignment of scratchpad
	// buffers handed to the WithBuffer entry points.
	ScratchpadAlignment = 16
)

// AllocateScratchpad returns a fresh ScratchpadSize-byte buffer aligned to
// ScratchpadAlignment, suitable for reuse across hashes with the WithBuffer
// entry points. Contents of a returned buffer are unspecified.
func AllocateScratchpad() []byte {
	buf := make([]byte, ScratchpadSize+ScratchpadAlignment)
	// #nosec G103 -- pointer only used to compute the aligned offset
	offset := int(-uintptr(unsafe.Pointer(unsafe.SliceData(buf))) & (ScratchpadAlignment - 1))
	return buf[offset : offset+ScratchpadSize : offset+ScratchpadSize]
}

// scratchpadWords checks the buffer reuse contract and reinterprets the
// buffer as uint64 words. A wrong-size or misaligned buffer is a caller bug,
// reported before any byte of it is touched.
func scratchpadWords(buf []byte) []uint64 {
	if len(buf) != ScratchpadSize {
		panic("cryptonight: scratchpad buffer length must be ScratchpadSize")
	}
	// #nosec G103 -- length and alignment verified
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)&(ScratchpadAlignment-1) != 0 {
		panic("cryptonight: scratchpad buffer must be aligned to ScratchpadAlignment")
	}
	return unsafe.Slice((*uint64)(ptr), ScratchpadSize/8)
}

// HardwareAccelerated reports whether the AES block rounds run on native
// cipher instructions instead of the table-based fallback. Both paths
// produce identical digests.
func HardwareAccelerated() bool {
	return hardwareAES
}
