package groestl

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
	{"", "1a52d11d550039be16107f9c58db9ebcc417f16f736adb2502567119f0083467"},
	{"The quick brown fox jumps over the lazy dog", "8c7ad62eb26a21297bc39c2d7293b4bd4d3399fa8afab29e970471739e28b301"},
	{strings.Repeat("a", 64), "56e6d76870910b6d4258c6f5fdbee846873f94437d6409ab53922b91ce4afe8c"},
	{strings.Repeat("a", 200), "87db96bdae4b4f99f90a0fb72686b0ca44cdeee3381b491cf634552ff2e458cd"},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		if sum := Sum256([]byte(v.input)); !bytes.Equal(sum, mustDecodeHex(v.output)) {
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

// Sum must not consume the digest state.
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
