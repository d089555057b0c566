package cryptonight

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAllocateScratchpad(t *testing.T) {
	for iter := 0; iter < 16; iter++ {
		buf := AllocateScratchpad()
		require.Len(t, buf, ScratchpadSize)
		// #nosec G103
		require.Zero(t, uintptr(unsafe.Pointer(unsafe.SliceData(buf)))&(ScratchpadAlignment-1))
	}
}

// Buffers violating the reuse contract are caller bugs and must be rejected
// before a single byte of them is written.
func TestScratchpadContract(t *testing.T) {
	h := New()

	for _, size := range []int{0, 1, ScratchpadSize / 2, ScratchpadSize - 1, ScratchpadSize + 1, ScratchpadSize * 2} {
		buf := make([]byte, size)
		require.Panics(t, func() {
			h.SumWithBuffer(buf)
		}, "size %d", size)
	}

	// right length, misaligned base address
	backing := make([]byte, ScratchpadSize+ScratchpadAlignment)
	// #nosec G103
	offset := int(-uintptr(unsafe.Pointer(unsafe.SliceData(backing))) & (ScratchpadAlignment - 1))
	misaligned := backing[offset+1 : offset+1+ScratchpadSize]
	require.Panics(t, func() {
		h.SumWithBuffer(misaligned)
	})

	// the backing buffer must be untouched after a rejected call
	for i, b := range backing {
		if b != 0 {
			t.Fatalf("byte %d written on rejected call", i)
		}
	}
}
