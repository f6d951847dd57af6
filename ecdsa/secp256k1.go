package ecdsa

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
)

// ErrWrongCurve is returned when converting a key that is not on secp256k1.
var ErrWrongCurve = errors.New("key is not on secp256k1")

// Secp256k1 converts pub to the decred (and btcec/v2) public key type.
func (pub *PublicKey) Secp256k1() (*secp256k1.PublicKey, error) {
	if !pub.Curve.Equal(ecurve.Secp256k1()) {
		return nil, ErrWrongCurve
	}
	return secp256k1.ParsePubKey(pub.Point.Encode(true))
}

// Secp256k1 converts priv to the decred (and btcec/v2) private key type.
func (priv *PrivateKey) Secp256k1() (*secp256k1.PrivateKey, error) {
	if !priv.Curve.Equal(ecurve.Secp256k1()) {
		return nil, ErrWrongCurve
	}
	return secp256k1.PrivKeyFromBytes(priv.Bytes()), nil
}

// FromSecp256k1 converts a decred (or btcec/v2) public key.
func FromSecp256k1(pub *secp256k1.PublicKey) (*PublicKey, error) {
	return ParsePublicKey(ecurve.Secp256k1(), pub.SerializeCompressed())
}
