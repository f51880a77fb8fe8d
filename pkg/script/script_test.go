package script

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseP2PKHScriptPubKey(t *testing.T) {
	raw, err := hex.DecodeString("1976a914bc3b654dca7e56b04dca18f2566cdaf02e8d9ada88ac")
	require.NoError(t, err)

	s, err := Parse(bytes.NewReader(raw))
	require.NoError(t, err)

	cmds := s.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, OpDup, cmds[0].Op())
	assert.Equal(t, OpHash160, cmds[1].Op())
	assert.True(t, cmds[2].IsData())
	assert.Len(t, cmds[2].Data(), 20)
	assert.Equal(t, OpEqualVerify, cmds[3].Op())
	assert.Equal(t, OpCheckSig, cmds[4].Op())

	// Serialization must reproduce the wire bytes exactly.
	serialized, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, raw, serialized)
}

func TestParseLengthMismatch(t *testing.T) {
	// Declared length 2, but the push opcode wants 5 data bytes.
	_, err := Parse(bytes.NewReader([]byte{0x02, 0x05, 0xaa}))
	assert.ErrorIs(t, err, ErrMalformedScript)

	// Declared length splits a push in half.
	_, err = Parse(bytes.NewReader([]byte{0x01, 0x02, 0xaa, 0xbb}))
	assert.ErrorIs(t, err, ErrMalformedScript)
}

func TestSerializePushdataThresholds(t *testing.T) {
	cases := []struct {
		dataLen    int
		wantPrefix []byte
	}{
		{1, []byte{0x01}},
		{75, []byte{75}},
		{76, []byte{byte(OpPushdata1), 76}},
		{255, []byte{byte(OpPushdata1), 255}},
		{256, []byte{byte(OpPushdata2), 0x00, 0x01}},
		{65535, []byte{byte(OpPushdata2), 0xff, 0xff}},
		{65536, []byte{byte(OpPushdata4), 0x00, 0x00, 0x01, 0x00}},
	}
	for _, tc := range cases {
		s := NewScript(DataCommand(make([]byte, tc.dataLen)))
		raw, err := s.rawSerialize()
		require.NoError(t, err)
		assert.Equal(t, tc.wantPrefix, raw[:len(tc.wantPrefix)], "length %d", tc.dataLen)
		assert.Len(t, raw, len(tc.wantPrefix)+tc.dataLen)

		// Each threshold must round-trip through the parser.
		serialized, err := s.Serialize()
		require.NoError(t, err)
		parsed, err := Parse(bytes.NewReader(serialized))
		require.NoError(t, err)
		require.Len(t, parsed.Commands(), 1)
		assert.Equal(t, tc.dataLen, len(parsed.Commands()[0].Data()))
	}
}

func TestScriptAdd(t *testing.T) {
	a := NewScript(DataCommand([]byte{1}))
	b := NewScript(OpCommand(OpDup))
	combined := a.Add(b)

	cmds := combined.Commands()
	require.Len(t, cmds, 2)
	assert.True(t, cmds[0].IsData())
	assert.Equal(t, OpDup, cmds[1].Op())

	// The operands are unchanged.
	assert.Len(t, a.Commands(), 1)
	assert.Len(t, b.Commands(), 1)
}

func TestEncodeNum(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{}},
		{1, []byte{0x01}},
		{-1, []byte{0x81}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x00}},
		{-128, []byte{0x80, 0x80}},
		{129, []byte{0x81, 0x00}},
		{256, []byte{0x00, 0x01}},
		{-256, []byte{0x00, 0x81}},
		{32767, []byte{0xff, 0x7f}},
		{32768, []byte{0x00, 0x80, 0x00}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EncodeNum(tc.n), "encoding %d", tc.n)
		assert.Equal(t, tc.n, DecodeNum(tc.want), "decoding %x", tc.want)
	}
}

func TestNumRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, 255, -255, 256, 1000, -1000, 1 << 30, -(1 << 30)} {
		assert.Equal(t, n, DecodeNum(EncodeNum(n)))
	}
}
