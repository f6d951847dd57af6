package ecdsa_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
	"github.com/ArdentHQ/arkvault-sub013/ecdsa"
)

func TestNewPrivateKeyRange(t *testing.T) {
	c := ecurve.Secp256k1()

	for _, d := range []*big.Int{big.NewInt(0), big.NewInt(-1), c.N(), new(big.Int).Add(c.N(), big.NewInt(1))} {
		_, err := ecdsa.NewPrivateKey(c, d)
		assert.ErrorIs(t, err, ecdsa.ErrInvalidPrivateKey, "d = %v", d)
	}

	priv, err := ecdsa.NewPrivateKey(c, big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, priv.Point.Equal(c.G()))
	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(priv.PublicKey.Bytes()))
}

func TestPrivateKeyBytes(t *testing.T) {
	c := ecurve.Secp256k1()
	priv, err := ecdsa.NewPrivateKey(c, big.NewInt(0x0102))
	require.NoError(t, err)

	b := priv.Bytes()
	require.Len(t, b, 32)
	assert.Equal(t, []byte{0x01, 0x02}, b[30:])

	back, err := ecdsa.ParsePrivateKey(c, b)
	require.NoError(t, err)
	assert.Equal(t, priv.D, back.D)
	assert.True(t, back.PublicKey.Equal(&priv.PublicKey))
}

func TestGenerateKeyEntropyFailure(t *testing.T) {
	_, err := ecdsa.GenerateKey(ecurve.Secp256k1(), bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestParsePublicKey(t *testing.T) {
	c := ecurve.Secp256k1()
	priv, err := ecdsa.GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	for _, compressed := range []bool{true, false} {
		data := priv.Point.Encode(compressed)
		pub, err := ecdsa.ParsePublicKey(c, data)
		require.NoError(t, err)
		assert.True(t, pub.Equal(priv.Public()))
		assert.Equal(t, data, pub.Bytes())
	}

	_, err = ecdsa.ParsePublicKey(c, []byte{0x00})
	assert.ErrorIs(t, err, ecurve.ErrPointAtInfinity)

	_, err = ecdsa.ParsePublicKey(c, []byte{0x02, 0x01})
	assert.ErrorIs(t, err, ecurve.ErrInvalidLength)
}

func TestPublicKeyEqualAcrossCurves(t *testing.T) {
	k1, err := ecdsa.NewPrivateKey(ecurve.Secp256k1(), big.NewInt(5))
	require.NoError(t, err)
	r1, err := ecdsa.NewPrivateKey(ecurve.P256(), big.NewInt(5))
	require.NoError(t, err)

	assert.False(t, k1.PublicKey.Equal(&r1.PublicKey))
	assert.True(t, k1.PublicKey.Equal(&k1.PublicKey))
}
