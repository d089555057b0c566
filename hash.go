package cryptonight

import (
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// HashSize Size of a CryptoNight digest in bytes.
const HashSize = 32

// Hash A 32-byte CryptoNight digest.
type Hash [HashSize]byte

var ZeroHash Hash

func HashFromString(s string) (Hash, error) {
	var h Hash
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else if len(buf) != HashSize {
		return h, errors.New("wrong hash size")
	} else {
		copy(h[:], buf)
		return h, nil
	}
}

func HashFromBytes(buf []byte) (h Hash) {
	if len(buf) != HashSize {
		return
	}
	copy(h[:], buf)
	return
}

// MustHashFromString calls HashFromString and panics on error.
func MustHashFromString(s string) Hash {
	if h, err := HashFromString(s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func (h Hash) MarshalJSON() ([]byte, error) {
	var buf [HashSize*2 + 2]byte
	buf[0] = '"'
	buf[HashSize*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	if len(b) != HashSize*2+2 {
		return errors.New("wrong hash size")
	}
	if b[0] != '"' || b[HashSize*2+1] != '"' {
		return errors.New("invalid hash")
	}

	if buf, err := fasthex.DecodeString(string(b[1 : len(b)-1])); err != nil {
		return err
	} else {
		copy(h[:], buf)
		return nil
	}
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash) Slice() []byte {
	return h[:]
}

// Uint64 returns the first eight bytes of the digest as a little endian
// integer, handy for difficulty style comparisons.
func (h Hash) Uint64() uint64 {
	return binary.LittleEndian.Uint64(h[:])
}
