package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/justinian336/bitcoin/internal/hash"
	"github.com/justinian336/bitcoin/pkg/ecc"
	"github.com/justinian336/bitcoin/pkg/encoding"
)

// SEC format markers.
const (
	secEven         = 0x02
	secOdd          = 0x03
	secUncompressed = 0x04
)

// Address version bytes.
const (
	addrPrefixMainnet = 0x00
	addrPrefixTestnet = 0x6f
)

// ErrInvalidSEC is returned when a byte slice is not a valid SEC-encoded
// point.
var ErrInvalidSEC = errors.New("invalid SEC point encoding")

// PublicKey is a point on the secp256k1 curve.
type PublicKey struct {
	point *ecc.Point
}

// NewPublicKey constructs a public key from affine coordinates, verifying
// that they lie on the curve.
func NewPublicKey(x, y *big.Int) (*PublicKey, error) {
	xf, err := ecc.NewFieldElement(x, P)
	if err != nil {
		return nil, err
	}
	yf, err := ecc.NewFieldElement(y, P)
	if err != nil {
		return nil, err
	}
	point, err := ecc.NewPoint(xf, yf, curveA, curveB)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// ParseSEC decodes a SEC-encoded point, either the 65-byte uncompressed
// form (0x04 || x || y) or the 33-byte compressed form (0x02/0x03 || x)
// where the marker selects the even or odd y root.
func ParseSEC(b []byte) (*PublicKey, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidSEC)
	}
	switch b[0] {
	case secUncompressed:
		if len(b) != 65 {
			return nil, fmt.Errorf("%w: uncompressed form needs 65 bytes, got %d", ErrInvalidSEC, len(b))
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		return NewPublicKey(x, y)

	case secEven, secOdd:
		if len(b) != 33 {
			return nil, fmt.Errorf("%w: compressed form needs 33 bytes, got %d", ErrInvalidSEC, len(b))
		}
		wantEven := b[0] == secEven

		x, err := ecc.NewFieldElement(new(big.Int).SetBytes(b[1:33]), P)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSEC, err)
		}
		// Right side of the curve equation: x^3 + B (A is zero).
		rhs, err := x.Pow(big.NewInt(3)).Add(curveB)
		if err != nil {
			return nil, err
		}
		candidate := Sqrt(rhs)

		// P is odd, so exactly one of candidate and P-candidate is even.
		var evenY, oddY *ecc.FieldElement
		flipped, err := ecc.NewFieldElement(new(big.Int).Sub(P, candidate.Num()), P)
		if err != nil {
			return nil, err
		}
		if candidate.Num().Bit(0) == 0 {
			evenY, oddY = candidate, flipped
		} else {
			evenY, oddY = flipped, candidate
		}

		y := oddY
		if wantEven {
			y = evenY
		}
		point, err := ecc.NewPoint(x, y, curveA, curveB)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSEC, err)
		}
		return &PublicKey{point: point}, nil

	default:
		return nil, fmt.Errorf("%w: unknown marker 0x%02x", ErrInvalidSEC, b[0])
	}
}

// SEC serializes the point: 0x02/0x03 || x for the compressed form (the
// marker encodes y's parity), 0x04 || x || y uncompressed. Coordinates
// are fixed-width 32-byte big-endian.
func (p *PublicKey) SEC(compressed bool) []byte {
	x := p.point.X().Num().FillBytes(make([]byte, 32))
	if !compressed {
		y := p.point.Y().Num().FillBytes(make([]byte, 32))
		return append(append([]byte{secUncompressed}, x...), y...)
	}
	marker := byte(secEven)
	if p.point.Y().Num().Bit(0) == 1 {
		marker = secOdd
	}
	return append([]byte{marker}, x...)
}

// Hash160 returns RIPEMD160(SHA256(sec)) of the chosen SEC encoding.
func (p *PublicKey) Hash160(compressed bool) []byte {
	return hash.Hash160(p.SEC(compressed))
}

// Address renders the P2PKH address: version byte plus Hash160,
// Base58Check encoded.
func (p *PublicKey) Address(compressed, testnet bool) string {
	prefix := byte(addrPrefixMainnet)
	if testnet {
		prefix = addrPrefixTestnet
	}
	payload := append([]byte{prefix}, p.Hash160(compressed)...)
	return encoding.EncodeBase58Checksum(payload)
}

// Verify checks sig against the sighash z: with u = z/s and v = r/s,
// the signature is valid iff (u*G + v*P).x == r. Validity is a boolean
// result, never an error.
func (p *PublicKey) Verify(z *big.Int, sig *Signature) bool {
	sInv := new(big.Int).Exp(sig.S, nMinus2(), N)
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, N)
	v := new(big.Int).Mul(sig.R, sInv)
	v.Mod(v, N)

	uG, err := G().ScalarMul(u)
	if err != nil {
		return false
	}
	vP, err := p.ScalarMul(v)
	if err != nil {
		return false
	}
	total, err := uG.point.Add(vP.point)
	if err != nil || total.IsInfinity() {
		return false
	}
	return total.X().Num().Cmp(sig.R) == 0
}

// ScalarMul computes k*p, reducing k mod N first. N is the group order,
// so the reduction preserves the result while bounding the loop.
func (p *PublicKey) ScalarMul(k *big.Int) (*PublicKey, error) {
	coef := new(big.Int).Mod(k, N)
	point, err := p.point.ScalarMul(coef)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// Add combines two public keys under the group law.
func (p *PublicKey) Add(other *PublicKey) (*PublicKey, error) {
	point, err := p.point.Add(other.point)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// Point returns the underlying curve point.
func (p *PublicKey) Point() *ecc.Point {
	return p.point
}

// Equal reports whether both keys are the same curve point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && p.point.Equal(other.point)
}

// IsInfinity reports whether the key is the group identity.
func (p *PublicKey) IsInfinity() bool {
	return p.point.IsInfinity()
}

func nMinus2() *big.Int {
	return new(big.Int).Sub(N, big.NewInt(2))
}
