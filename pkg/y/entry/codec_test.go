package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBytes(t *testing.T) {
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, KeyBytes(int32(42)))
	assert.Equal(t, KeyBytes(uint8(7)), KeyBytes(int64(7)))
	assert.Len(t, KeyBytes(int64(-1)), KeySize)
}

func TestParseKey(t *testing.T) {
	for _, k := range []int64{0, 1, 42, -1, 1 << 40} {
		assert.Equal(t, k, ParseKey[int64](KeyBytes(k)))
	}
	assert.Equal(t, int32(-5), ParseKey[int32](KeyBytes(int32(-5))))
}
