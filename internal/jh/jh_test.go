package jh

import (
	"bytes"
	"strings"
	"testing"

	fasthex "github.com/tmthrgd/go-hex"
)

var vectors = []struct {
	input  string
	output string
}{
	{"", "46e64619c18bb0a92a5e87185a47eef83ca747b8fcc8e1412921357e326df434"},
	{"The quick brown fox jumps over the lazy dog", "6a049fed5fc6874acfdc4a08b568a4f8cbac27de933496f031015b38961608a0"},
	{strings.Repeat("a", 64), "05733727efdd236118340ec8f870689c0c9e571d3ff64614cfea082599e56593"},
	{strings.Repeat("a", 200), "6880d6d100b306756d8c647254392f27b88c25a3e0c01ea964ddd84d1aa92202"},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		sum := Sum256([]byte(v.input))
		if !bytes.Equal(sum[:], mustDecodeHex(v.output)) {
			t.Errorf("input len %d: got %x, want %s", len(v.input), sum, v.output)
		}
	}
}

func TestWriteSplit(t *testing.T) {
	input := []byte(vectors[3].input)
	want := mustDecodeHex(vectors[3].output)

	for _, split := range []int{1, 17, 63, 64, 65, 128} {
		d := New256()
		_, _ = d.Write(input[:split])
		_, _ = d.Write(input[split:])
		if sum := d.Sum(nil); !bytes.Equal(sum, want) {
			t.Errorf("split %d: got %x", split, sum)
		}
	}
}

func TestSumIdempotent(t *testing.T) {
	d := New256()
	_, _ = d.Write([]byte(vectors[1].input))
	first := d.Sum(nil)
	second := d.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("repeated Sum differs: %x vs %x", first, second)
	}
}

func mustDecodeHex(s string) []byte {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return buf
}
