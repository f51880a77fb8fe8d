// Package hash bundles the hash primitives the Bitcoin protocol depends on:
// double SHA-256, SHA-256 followed by RIPEMD-160, and HMAC-SHA256.
//
// RIPEMD-160 is deprecated for new designs but is fixed by the protocol
// (P2PKH addresses are RIPEMD160(SHA256(pubkey))), so the x/crypto
// implementation is used deliberately.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the protocol
)

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// Hash256 returns SHA256(SHA256(b)), the checksum and sighash function.
func Hash256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns RIPEMD160(SHA256(b)), the address hash function.
func Hash160(b []byte) []byte {
	first := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(first[:])
	return r.Sum(nil)
}

// HmacSha256 returns the HMAC-SHA256 of message under key.
func HmacSha256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
