package skein

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	fasthex "github.com/tmthrgd/go-hex"
)

var vectors = []struct {
	input  string
	output string
}{
	{"", "39ccc4554a8b31853b9de7a1fe638a24cce6b35a55f2431009e18780335d2621"},
	{"The quick brown fox jumps over the lazy dog", "b3250457e05d3060b1a4bbc1428bc75a3f525ca389aeab96cfa34638d96e492a"},
	{strings.Repeat("a", 64), "6b8cd8ac4c67fb6468896693b8f5d3bb54002da20901699233b318bbd10fce85"},
	{strings.Repeat("a", 200), "4e8756ae05b8939062789a21e4d612286ed52fca0220d3dcf0adcd43344dfccf"},
}

func TestSum256(t *testing.T) {
	for _, v := range vectors {
		var out [32]byte
		Sum256(&out, []byte(v.input), nil)
		if !bytes.Equal(out[:], mustDecodeHex(v.output)) {
			t.Errorf("input len %d: got %x, want %s", len(v.input), out, v.output)
		}
	}
}

// The precomputed 256-bit IV must match running the configuration block
// through UBI from a zero chain value. The ninth word is schedule parity
// scratch and not part of the chain value.
func TestIV256(t *testing.T) {
	var s HashFunc
	s.Init(32, nil)
	if !slices.Equal(s.hVal[:8], iv256[:8]) {
		t.Errorf("got %#v", s.hVal)
	}
}

func mustDecodeHex(s string) []byte {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return buf
}
