package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash256(t *testing.T) {
	got := Hash256([]byte("hello world"))
	assert.Equal(t, "bc62d4b80d9e36da29c16c5d4d9f11731f36052c72401a76c23c0fb5a9b74423", hex.EncodeToString(got))
}

func TestHash160(t *testing.T) {
	got := Hash160([]byte("hello world"))
	assert.Equal(t, "d7d5ee7824ff93f94c3055af9382c86c68b5ca92", hex.EncodeToString(got))
	assert.Len(t, got, 20)
}

func TestHmacSha256(t *testing.T) {
	got := HmacSha256([]byte("key"), []byte("message"))
	assert.Equal(t, "6e9ef29b75fffc5b7abae527d58fdadb2fe42e7219011976917343065f58ed4a", hex.EncodeToString(got))
}
