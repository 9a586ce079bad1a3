package entry

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// KeySize is the encoded width of every integer key.
const KeySize = 8

// PutKey writes k into buf as 8 little-endian bytes. Narrower integers are
// widened first so equal keys always encode the same way.
func PutKey[K constraints.Integer](buf []byte, k K) {
	binary.LittleEndian.PutUint64(buf, uint64(k))
}

func KeyBytes[K constraints.Integer](k K) []byte {
	buf := make([]byte, KeySize)
	PutKey(buf, k)
	return buf
}

func ParseKey[K constraints.Integer](buf []byte) K {
	return K(binary.LittleEndian.Uint64(buf))
}
