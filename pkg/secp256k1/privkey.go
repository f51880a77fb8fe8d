package secp256k1

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/justinian336/bitcoin/internal/hash"
	"github.com/justinian336/bitcoin/pkg/encoding"
)

// WIF version bytes.
const (
	wifPrefixMainnet    = 0x80
	wifPrefixTestnet    = 0xef
	wifSuffixCompressed = 0x01
)

// ErrInvalidSecret is returned when a secret lies outside [1, N-1].
var ErrInvalidSecret = errors.New("secret not in [1, N-1]")

// PrivateKey holds an ECDSA secret and its public point. The point is
// computed once at construction and never recomputed.
type PrivateKey struct {
	secret *big.Int
	pub    *PublicKey
}

// NewPrivateKey validates the secret and derives the public key secret*G.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.Cmp(N) >= 0 {
		return nil, ErrInvalidSecret
	}
	pub, err := G().ScalarMul(secret)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		secret: new(big.Int).Set(secret),
		pub:    pub,
	}, nil
}

// PublicKey returns the point secret*G.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.pub
}

// Sign produces a low-s ECDSA signature over the sighash z. With
// deterministic set, the nonce comes from the HMAC-SHA256 derivation in
// DeterministicK and repeated calls yield identical signatures; otherwise
// the nonce is drawn from crypto/rand.
func (k *PrivateKey) Sign(z *big.Int, deterministic bool) (*Signature, error) {
	var nonce *big.Int
	if deterministic {
		nonce = k.DeterministicK(z)
	} else {
		var err error
		nonce, err = crand.Int(crand.Reader, N)
		if err != nil {
			return nil, fmt.Errorf("generating nonce: %w", err)
		}
		if nonce.Sign() == 0 {
			nonce.SetInt64(1)
		}
	}

	// R = nonce*G; r is R's x coordinate.
	r0, err := G().ScalarMul(nonce)
	if err != nil {
		return nil, err
	}
	r := r0.point.X().Num()

	// s = (z + r*secret) / nonce mod N.
	kInv := new(big.Int).Exp(nonce, nMinus2(), N)
	s := new(big.Int).Mul(r, k.secret)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, N)

	// Low-s normalization: the malleable twin N-s is never emitted.
	if s.Cmp(halfN) > 0 {
		s.Sub(N, s)
	}
	return &Signature{R: r, S: s}, nil
}

// DeterministicK derives a signing nonce from the secret and the sighash
// with HMAC-SHA256, in the style of RFC 6979. Identical inputs always
// produce the same nonce.
//
// A sighash above N is reduced by a single subtraction of N rather than a
// full modular reduction. This mirrors the historical behavior of the
// encoding this implementation must stay bit-compatible with; see
// DESIGN.md before changing it.
func (k *PrivateKey) DeterministicK(z *big.Int) *big.Int {
	kBytes := make([]byte, 32)
	vBytes := make([]byte, 32)
	for i := range vBytes {
		vBytes[i] = 0x01
	}

	zReduced := new(big.Int).Set(z)
	if zReduced.Cmp(N) > 0 {
		zReduced.Sub(zReduced, N)
	}
	zb := zReduced.FillBytes(make([]byte, 32))
	sb := k.secret.FillBytes(make([]byte, 32))

	kBytes = hash.HmacSha256(kBytes, concat(vBytes, []byte{0x00}, sb, zb))
	vBytes = hash.HmacSha256(kBytes, vBytes)
	kBytes = hash.HmacSha256(kBytes, concat(vBytes, []byte{0x01}, sb, zb))
	vBytes = hash.HmacSha256(kBytes, vBytes)

	for {
		vBytes = hash.HmacSha256(kBytes, vBytes)
		candidate := new(big.Int).SetBytes(vBytes)
		if candidate.Sign() > 0 && candidate.Cmp(N) < 0 {
			return candidate
		}
		kBytes = hash.HmacSha256(kBytes, append(append([]byte{}, vBytes...), 0x00))
		vBytes = hash.HmacSha256(kBytes, vBytes)
	}
}

// WIF renders the secret in wallet import format: version byte, 32-byte
// big-endian secret, optional 0x01 compression suffix, Base58Check.
func (k *PrivateKey) WIF(compressed, testnet bool) string {
	prefix := byte(wifPrefixMainnet)
	if testnet {
		prefix = wifPrefixTestnet
	}
	payload := append([]byte{prefix}, k.secret.FillBytes(make([]byte, 32))...)
	if compressed {
		payload = append(payload, wifSuffixCompressed)
	}
	return encoding.EncodeBase58Checksum(payload)
}

// Secret returns a copy of the secret scalar.
func (k *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(k.secret)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
