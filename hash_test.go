package cryptonight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	s := "eb14e8a833fac6fe9a43b57b336789c46ffe93f2868452240720607b14387e11"

	h, err := HashFromString(s)
	require.NoError(t, err)
	require.Equal(t, s, h.String())

	_, err = HashFromString("abcd")
	require.Error(t, err)

	_, err = HashFromString("zz14e8a833fac6fe9a43b57b336789c46ffe93f2868452240720607b14387e11")
	require.Error(t, err)
}

func TestHashJSON(t *testing.T) {
	h := MustHashFromString("b1257de4efc5ce28c6b40ceb1c6c8f812a64634eb3e81c5220bee9b2b76a6f05")

	buf, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `"b1257de4efc5ce28c6b40ceb1c6c8f812a64634eb3e81c5220bee9b2b76a6f05"`, string(buf))

	var back Hash
	require.NoError(t, json.Unmarshal(buf, &back))
	require.Equal(t, h, back)

	require.Error(t, back.UnmarshalJSON([]byte(`"abcd"`)))
}

func TestHashUint64(t *testing.T) {
	h := MustHashFromString("0100000000000000ffffffffffffffffffffffffffffffffffffffffffffffff")
	require.EqualValues(t, 1, h.Uint64())
}
