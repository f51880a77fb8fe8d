// Package encoding implements the text and variable-length binary codecs
// shared between the key, script and transaction layers: Base58Check and
// the Bitcoin varint format.
package encoding

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/justinian336/bitcoin/internal/hash"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	ErrInvalidBase58   = errors.New("invalid base58 character")
	ErrInvalidChecksum = errors.New("base58 checksum mismatch")
	ErrPayloadTooShort = errors.New("base58 payload shorter than checksum")
)

var (
	base58Radix       = big.NewInt(58)
	base58CharToDigit [128]int8
)

func init() {
	for i := range base58CharToDigit {
		base58CharToDigit[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58CharToDigit[base58Alphabet[i]] = int8(i)
	}
}

// EncodeBase58 encodes b in the Bitcoin base58 alphabet. Leading zero
// bytes carry no magnitude, so each one becomes a literal '1' prefix.
func EncodeBase58(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(b)
	mod := new(big.Int)
	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, base58Radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, base58Alphabet[0])
	}

	// Digits were produced least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// EncodeBase58Checksum appends the first 4 bytes of Hash256(b) and encodes
// the result, producing the Base58Check form used by addresses and WIF.
func EncodeBase58Checksum(b []byte) string {
	checksum := hash.Hash256(b)[:4]
	return EncodeBase58(append(append([]byte{}, b...), checksum...))
}

// DecodeBase58 decodes a base58 string back to bytes, restoring one zero
// byte per leading '1'.
func DecodeBase58(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == base58Alphabet[0] {
		zeros++
	}

	num := new(big.Int)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || base58CharToDigit[c] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBase58, c)
		}
		num.Mul(num, base58Radix)
		num.Add(num, big.NewInt(int64(base58CharToDigit[c])))
	}

	payload := num.Bytes()
	out := make([]byte, zeros+len(payload))
	copy(out[zeros:], payload)
	return out, nil
}

// DecodeBase58Checksum decodes a Base58Check string and verifies its
// trailing 4-byte checksum, returning the payload without the checksum.
func DecodeBase58Checksum(s string) ([]byte, error) {
	raw, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, ErrPayloadTooShort
	}
	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	expected := hash.Hash256(payload)[:4]
	for i := range checksum {
		if checksum[i] != expected[i] {
			return nil, fmt.Errorf("%w: got %x want %x", ErrInvalidChecksum, checksum, expected)
		}
	}
	return payload, nil
}
