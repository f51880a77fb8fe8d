package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVarint(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{252, []byte{0xfc}},
		{253, []byte{0xfd, 0xfd, 0x00}},
		{255, []byte{0xfd, 0xff, 0x00}},
		{256, []byte{0xfd, 0x00, 0x01}},
		{65535, []byte{0xfd, 0xff, 0xff}},
		{65536, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{1<<32 - 1, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{1 << 32, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{1<<64 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EncodeVarint(tc.n), "encoding %d", tc.n)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	boundaries := []uint64{0, 1, 252, 253, 255, 256, 65535, 65536, 1<<32 - 1, 1 << 32, 1<<64 - 1}
	for _, n := range boundaries {
		got, err := ReadVarint(bytes.NewReader(EncodeVarint(n)))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestReadVarintTruncated(t *testing.T) {
	_, err := ReadVarint(bytes.NewReader(nil))
	assert.Error(t, err)

	_, err = ReadVarint(bytes.NewReader([]byte{0xfd, 0x01}))
	assert.Error(t, err)

	_, err = ReadVarint(bytes.NewReader([]byte{0xff, 0x01, 0x02}))
	assert.Error(t, err)
}

func TestLittleEndianHelpers(t *testing.T) {
	assert.Equal(t, uint64(0x0102), LittleEndianToInt([]byte{0x02, 0x01}))
	assert.Equal(t, []byte{0x02, 0x01}, IntToLittleEndian(0x0102, 2))
	assert.Equal(t, []byte{0xff, 0x00, 0x00, 0x00}, IntToLittleEndian(255, 4))
	assert.Equal(t, uint64(255), LittleEndianToInt(IntToLittleEndian(255, 4)))
}
