package cryptonight

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"testing"
)

type testVector struct {
	Input  []byte
	Output Hash
}

var testVectors = []testVector{
	// From CNS008
	{Input: []byte(""), Output: MustHashFromString("eb14e8a833fac6fe9a43b57b336789c46ffe93f2868452240720607b14387e11")},
	{Input: []byte("This is a test"), Output: MustHashFromString("a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605")},

	// Monero tests-slow.txt, between them these cover all four finalization
	// hashes: Blake, Groestl, JH and Skein
	{Input: []byte("de omnibus dubitandum"), Output: MustHashFromString("2f8e3df40bd11f9ac90c743ca8e32bb391da4fb98612aa3b6cdc639ee00b31f5")},
	{Input: []byte("abundans cautela non nocet"), Output: MustHashFromString("722fa8ccd594d40e4a41f3822734304c8d5eff7e1b528408e2229da38ba553c4")},
	{Input: []byte("caveat emptor"), Output: MustHashFromString("bbec2cacf69866a8e740380fe7b818fc78f8571221742d729d9d02d7f8989b87")},
	{Input: []byte("ex nihilo nihil fit"), Output: MustHashFromString("b1257de4efc5ce28c6b40ceb1c6c8f812a64634eb3e81c5220bee9b2b76a6f05")},
}

func TestSum(t *testing.T) {
	for _, v := range testVectors {
		t.Run(fmt.Sprintf("%x..._%d", v.Input[:min(len(v.Input), 8)], len(v.Input)), func(t *testing.T) {
			result := Sum(v.Input)
			if result != v.Output {
				t.Errorf("Sum(...) = %x, want %x", result.Slice(), v.Output.Slice())
			}
		})
	}
}

func TestSumHasher(t *testing.T) {
	for _, v := range testVectors {
		h := New()
		_, _ = h.Write(v.Input)
		if result := HashFromBytes(h.Sum(nil)); result != v.Output {
			t.Errorf("Sum(...) = %x, want %x", result.Slice(), v.Output.Slice())
		}
	}
}

// Absorbing input across many Write calls must not change the digest.
func TestSumIncremental(t *testing.T) {
	scratchpad := AllocateScratchpad()

	input := make([]byte, 500)
	_, _ = rand.Read(input)

	want := SumWithBuffer(input, scratchpad)

	for _, chunk := range []int{1, 3, 64, 136, 137, 499} {
		h := New()
		for p := input; len(p) > 0; {
			n := min(chunk, len(p))
			_, _ = h.Write(p[:n])
			p = p[n:]
		}
		if result := h.SumWithBuffer(scratchpad); result != want {
			t.Errorf("chunk size %d: got %x, want %x", chunk, result.Slice(), want.Slice())
		}
	}
}

// Sum must leave the accumulator usable: calling it twice yields the same
// digest, and further writes continue the same stream.
func TestSumNonDestructive(t *testing.T) {
	scratchpad := AllocateScratchpad()

	h := New()
	_, _ = h.Write([]byte("caveat "))

	first := h.SumWithBuffer(scratchpad)
	second := h.SumWithBuffer(scratchpad)
	if first != second {
		t.Fatalf("repeated Sum differs: %x vs %x", first.Slice(), second.Slice())
	}

	_, _ = h.Write([]byte("emptor"))
	if result := h.SumWithBuffer(scratchpad); result != MustHashFromString("bbec2cacf69866a8e740380fe7b818fc78f8571221742d729d9d02d7f8989b87") {
		t.Errorf("write after Sum diverged from one-shot: %x", result.Slice())
	}
}

func TestReset(t *testing.T) {
	scratchpad := AllocateScratchpad()

	h := New()
	_, _ = h.Write([]byte("de omnibus dubitandum"))
	h.Reset()
	_, _ = h.Write([]byte("This is a test"))

	if result := h.SumWithBuffer(scratchpad); result != testVectors[1].Output {
		t.Errorf("got %x, want %x", result.Slice(), testVectors[1].Output.Slice())
	}
}

// Prior scratchpad contents must never leak into the digest: every byte is
// written before it is read. An adversarially pre-filled buffer must leave
// both the digest and the final scratchpad contents identical to a zeroed
// buffer run.
func TestScratchpadReuse(t *testing.T) {
	zeroed := AllocateScratchpad()
	filled := AllocateScratchpad()
	for i := range filled {
		filled[i] = 0xff
	}

	input := []byte("ex nihilo nihil fit")

	a := SumWithBuffer(input, zeroed)
	b := SumWithBuffer(input, filled)
	if a != b {
		t.Fatalf("digest depends on prior scratchpad contents: %x vs %x", a.Slice(), b.Slice())
	}
	if a != testVectors[5].Output {
		t.Errorf("got %x, want %x", a.Slice(), testVectors[5].Output.Slice())
	}
	if !bytes.Equal(zeroed, filled) {
		t.Error("final scratchpad contents depend on prior contents")
	}
}

func TestSumAppend(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("This is a test"))

	prefix := []byte{0xde, 0xad}
	out := h.Sum(prefix)
	if len(out) != len(prefix)+HashSize {
		t.Fatalf("unexpected output length %d", len(out))
	}
	if !bytes.Equal(out[:2], prefix) {
		t.Error("prefix not preserved")
	}
	if HashFromBytes(out[2:]) != testVectors[1].Output {
		t.Errorf("got %x, want %x", out[2:], testVectors[1].Output.Slice())
	}
}

func TestHasherInterface(t *testing.T) {
	h := New()
	if h.Size() != HashSize {
		t.Errorf("Size() = %d", h.Size())
	}
	if h.BlockSize() != BlockSize {
		t.Errorf("BlockSize() = %d", h.BlockSize())
	}
}

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()

	scratchpad := AllocateScratchpad()

	var input [64]byte
	_, _ = rand.Read(input[:])

	var iterations uint64
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		binary.LittleEndian.PutUint64(input[35:], iterations)
		iterations++
		SumWithBuffer(input[:], scratchpad)
	}
}
