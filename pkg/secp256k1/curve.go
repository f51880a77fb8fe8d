// Package secp256k1 specializes the generic ecc group law to the Bitcoin
// curve y^2 = x^3 + 7 over the prime P = 2^256 - 2^32 - 977, and builds
// ECDSA signing, verification and the SEC/DER/address serializations on
// top of it.
package secp256k1

import (
	"math/big"

	"github.com/justinian336/bitcoin/pkg/ecc"
)

// Curve constants. A and B define the Weierstrass equation, P is the
// field prime, N the order of the base point G.
var (
	P = mustHexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	N = mustHexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	Gx = mustHexInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy = mustHexInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	curveA = mustField(big.NewInt(0))
	curveB = mustField(big.NewInt(7))

	// halfN is the low-s threshold for signature malleability.
	halfN = new(big.Int).Rsh(N, 1)

	basePoint = mustPoint(Gx, Gy)
)

func mustHexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: bad hex constant " + s)
	}
	return n
}

func mustField(num *big.Int) *ecc.FieldElement {
	f, err := ecc.NewFieldElement(num, P)
	if err != nil {
		panic(err)
	}
	return f
}

func mustPoint(x, y *big.Int) *ecc.Point {
	p, err := ecc.NewPoint(mustField(x), mustField(y), curveA, curveB)
	if err != nil {
		panic(err)
	}
	return p
}

// G returns the base point of the curve.
func G() *PublicKey {
	return &PublicKey{point: basePoint}
}

// Sqrt returns a square root of f in the secp256k1 field, computed as
// f^((P+1)/4). This shortcut is valid exclusively because P = 3 (mod 4);
// it must not be reused for a general prime.
func Sqrt(f *ecc.FieldElement) *ecc.FieldElement {
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2)
	return f.Pow(exp)
}
