package secp256k1

import (
	"errors"
	"fmt"
	"math/big"
)

// DER markers.
const (
	derSequence = 0x30
	derInteger  = 0x02
)

// ErrMalformedSignature is returned when a byte slice is not a valid DER
// signature.
var ErrMalformedSignature = errors.New("malformed DER signature")

// Signature is an ECDSA signature pair. Both values are interpreted as
// unsigned 256-bit integers.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewSignature copies r and s into a fresh signature.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{
		R: new(big.Int).Set(r),
		S: new(big.Int).Set(s),
	}
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%x, %x)", sig.R, sig.S)
}

// Equal reports whether both signature components match.
func (sig *Signature) Equal(other *Signature) bool {
	return other != nil && sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// DER serializes the signature:
//
//	0x30 <total length> 0x02 <len R> <R> 0x02 <len S> <S>
//
// Each integer is minimal big-endian with a single 0x00 pad when the high
// bit is set, per the DER unsigned-integer rules.
func (sig *Signature) DER() []byte {
	body := append(derEncodeInt(sig.R), derEncodeInt(sig.S)...)
	out := make([]byte, 0, 2+len(body))
	out = append(out, derSequence, byte(len(body)))
	return append(out, body...)
}

func derEncodeInt(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	out := make([]byte, 0, 2+len(b))
	out = append(out, derInteger, byte(len(b)))
	return append(out, b...)
}

// ParseDER decodes a DER signature, the exact inverse of DER. The outer
// sequence length must account for every remaining byte.
func ParseDER(b []byte) (*Signature, error) {
	if len(b) < 2 || b[0] != derSequence {
		return nil, fmt.Errorf("%w: missing sequence marker", ErrMalformedSignature)
	}
	if int(b[1]) != len(b)-2 {
		return nil, fmt.Errorf("%w: declared length %d, have %d bytes", ErrMalformedSignature, b[1], len(b)-2)
	}

	r, rest, err := derDecodeInt(b[2:])
	if err != nil {
		return nil, err
	}
	s, rest, err := derDecodeInt(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedSignature, len(rest))
	}
	return &Signature{R: r, S: s}, nil
}

func derDecodeInt(b []byte) (*big.Int, []byte, error) {
	if len(b) < 2 || b[0] != derInteger {
		return nil, nil, fmt.Errorf("%w: missing integer marker", ErrMalformedSignature)
	}
	length := int(b[1])
	if length == 0 || len(b) < 2+length {
		return nil, nil, fmt.Errorf("%w: truncated integer", ErrMalformedSignature)
	}
	raw := b[2 : 2+length]
	// Drop the single sign pad byte, if present.
	if raw[0] == 0 {
		raw = raw[1:]
	}
	return new(big.Int).SetBytes(raw), b[2+length:], nil
}
