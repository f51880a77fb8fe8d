package e2e

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinian336/bitcoin/internal/hash"
	btc "github.com/justinian336/bitcoin/pkg/secp256k1"
)

// Differential tests against the decred secp256k1 implementation: the
// big.Int arithmetic here must agree bit for bit with an independent,
// optimized implementation of the same curve.

func randomSecret(t *testing.T) *big.Int {
	t.Helper()
	secret, err := rand.Int(rand.Reader, btc.N)
	require.NoError(t, err)
	if secret.Sign() == 0 {
		secret.SetInt64(1)
	}
	return secret
}

func TestScalarBaseMultMatchesDecred(t *testing.T) {
	for i := 0; i < 8; i++ {
		secret := randomSecret(t)

		ours, err := btc.G().ScalarMul(secret)
		require.NoError(t, err)

		var k secp256k1.ModNScalar
		k.SetByteSlice(secret.Bytes())
		var theirs secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&k, &theirs)
		theirs.ToAffine()

		xBytes := theirs.X.Bytes()
		yBytes := theirs.Y.Bytes()
		assert.Equal(t, 0, ours.Point().X().Num().Cmp(new(big.Int).SetBytes(xBytes[:])))
		assert.Equal(t, 0, ours.Point().Y().Num().Cmp(new(big.Int).SetBytes(yBytes[:])))
	}
}

func TestSECMatchesDecred(t *testing.T) {
	secret := randomSecret(t)

	key, err := btc.NewPrivateKey(secret)
	require.NoError(t, err)

	theirKey := secp256k1.PrivKeyFromBytes(secret.FillBytes(make([]byte, 32)))
	assert.Equal(t, theirKey.PubKey().SerializeCompressed(), key.PublicKey().SEC(true))
	assert.Equal(t, theirKey.PubKey().SerializeUncompressed(), key.PublicKey().SEC(false))
}

func TestOurSignaturesVerifyUnderDecred(t *testing.T) {
	secret := randomSecret(t)
	digest := hash.Hash256([]byte("cross implementation check"))
	z := new(big.Int).SetBytes(digest)

	key, err := btc.NewPrivateKey(secret)
	require.NoError(t, err)
	sig, err := key.Sign(z, true)
	require.NoError(t, err)

	theirSig, err := dcrecdsa.ParseDERSignature(sig.DER())
	require.NoError(t, err)

	theirKey := secp256k1.PrivKeyFromBytes(secret.FillBytes(make([]byte, 32)))
	assert.True(t, theirSig.Verify(digest, theirKey.PubKey()))
}

func TestDecredSignaturesVerifyUnderOurs(t *testing.T) {
	secret := randomSecret(t)
	digest := hash.Hash256([]byte("cross implementation check"))
	z := new(big.Int).SetBytes(digest)

	theirKey := secp256k1.PrivKeyFromBytes(secret.FillBytes(make([]byte, 32)))
	theirSig := dcrecdsa.Sign(theirKey, digest)

	sig, err := btc.ParseDER(theirSig.Serialize())
	require.NoError(t, err)

	key, err := btc.NewPrivateKey(secret)
	require.NoError(t, err)
	assert.True(t, key.PublicKey().Verify(z, sig))
}
