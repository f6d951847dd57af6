package ecdsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
)

// ErrInvalidPrivateKey is returned for private scalars outside [1, n).
var ErrInvalidPrivateKey = errors.New("private key is not in [1, n)")

// PublicKey represents an ECDSA public key.
type PublicKey struct {
	Curve *ecurve.Curve

	// Point is the public key point. It is never the identity element.
	Point *ecurve.Point
}

// Bytes returns the SEC1 encoding of the public key in the point's default
// form, compressed unless the key was parsed from an uncompressed encoding.
func (pub *PublicKey) Bytes() []byte {
	return pub.Point.Bytes()
}

// Equal reports whether pub and x have the same value.
//
// Two keys are only considered to have the same value if they are on the same
// curve.
func (pub *PublicKey) Equal(x *PublicKey) bool {
	return pub.Curve.Equal(x.Curve) && pub.Point.Equal(x.Point)
}

// ParsePublicKey decodes a SEC1 encoded public key and checks that it is a
// valid point of the subgroup generated by the base point.
func ParsePublicKey(c *ecurve.Curve, data []byte) (*PublicKey, error) {
	q, err := c.DecodePoint(data)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	if err := c.Validate(q); err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return &PublicKey{Curve: c, Point: q}, nil
}

// PrivateKey represents an ECDSA private key.
type PrivateKey struct {
	PublicKey

	// D is the private scalar value.
	//
	// Modifying the raw value can produce invalid keys.
	D *big.Int
}

// Public returns the public key corresponding to priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &priv.PublicKey
}

// NewPrivateKey returns the private key with scalar d, deriving the public
// point d·G.
func NewPrivateKey(c *ecurve.Curve, d *big.Int) (*PrivateKey, error) {
	N := c.N()
	if N == nil {
		return nil, errZeroParam
	}
	if d.Sign() <= 0 || d.Cmp(N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}

	priv := new(PrivateKey)
	priv.PublicKey.Curve = c
	priv.D = new(big.Int).Set(d)
	priv.PublicKey.Point = c.G().Multiply(priv.D)
	return priv, nil
}

// ParsePrivateKey interprets b as a big-endian private scalar.
func ParsePrivateKey(c *ecurve.Curve, b []byte) (*PrivateKey, error) {
	return NewPrivateKey(c, new(big.Int).SetBytes(b))
}

// Bytes returns the private scalar big-endian, padded to the byte length of
// the curve order.
func (priv *PrivateKey) Bytes() []byte {
	return priv.D.FillBytes(make([]byte, (priv.Curve.N().BitLen()+7)/8))
}

// GenerateKey generates a new private key on c.
func GenerateKey(c *ecurve.Curve, rand io.Reader) (*PrivateKey, error) {
	if c.N() == nil {
		return nil, errZeroParam
	}
	k, err := randFieldElement(c, rand)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(c, k)
}
