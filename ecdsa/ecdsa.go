// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm, as
// defined in FIPS 186-3, on top of the curve arithmetic in package ecurve.
//
// The nonce is drawn from a ChaCha8 stream seeded with
//
// entropy ⊕ priv.D ⊕ hash
//
// so that a weak entropy source alone does not leak the private key.
// Signatures are produced with a low S value (s ≤ n/2), the form expected by
// Bitcoin-family chains; verification accepts either form.
package ecdsa

// Further references:
//   [SECG]: SECG, SEC1
//     http://www.secg.org/sec1-v2.pdf

import (
	"errors"
	"io"
	"math/big"
	"math/rand/v2"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	ecurve "github.com/ArdentHQ/arkvault-sub013"
)

var (
	errZeroParam   = errors.New("zero parameter")
	errInvalidASN1 = errors.New("invalid ASN.1")
)

// randFieldElement returns a random element of the order of the given
// curve using the procedure given in FIPS 186-4, Appendix B.5.2.
func randFieldElement(c *ecurve.Curve, rand io.Reader) (k *big.Int, err error) {
	N := c.N()
	for {
		b := make([]byte, (N.BitLen()+7)/8)
		if _, err = io.ReadFull(rand, b); err != nil {
			return
		}
		if excess := len(b)*8 - N.BitLen(); excess > 0 {
			b[0] >>= excess
		}
		k = new(big.Int).SetBytes(b)
		if k.Sign() != 0 && k.Cmp(N) < 0 {
			return
		}
	}
}

// hashToInt converts a hash value to an integer. Per FIPS 186-4, Section 6.4,
// we use the left-most bits of the hash to match the bit-length of the order of
// the curve. This also performs Step 5 of SEC 1, Version 2.0, Section 4.1.3.
func hashToInt(hash []byte, c *ecurve.Curve) *big.Int {
	orderBits := c.N().BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}

// SignASN1 signs a hash (which should be the result of hashing a larger message)
// using the private key, priv. If the hash is longer than the bit-length of the
// private key's curve order, the hash will be truncated to that length. It
// returns the DER encoded signature.
func SignASN1(csprng io.Reader, priv *PrivateKey, hash []byte) ([]byte, error) {
	r, s, err := Sign(csprng, priv, hash)
	if err != nil {
		return nil, err
	}
	return encodeSignature(r.Bytes(), s.Bytes())
}

// Sign signs a hash using the private key, priv, and returns the signature as
// a pair of integers. Most applications should use [SignASN1] instead of
// dealing directly with r, s.
func Sign(csprng io.Reader, priv *PrivateKey, hash []byte) (r, s *big.Int, err error) {
	var seed [32]byte
	if _, err := io.ReadFull(csprng, seed[:]); err != nil {
		return nil, nil, err
	}
	for i, b := range priv.D.Bytes() {
		seed[i%32] ^= b
	}
	for i, b := range hash {
		seed[i%32] ^= b
	}
	return sign(priv, rand.NewChaCha8(seed), hash)
}

func sign(priv *PrivateKey, csprng io.Reader, hash []byte) (r, s *big.Int, err error) {
	c := priv.Curve
	N := c.N()
	if N == nil || N.Sign() == 0 {
		return nil, nil, errZeroParam
	}
	var k, kInv *big.Int
	for {
		for {
			k, err = randFieldElement(c, csprng)
			if err != nil {
				r = nil
				return
			}

			kInv = new(big.Int).ModInverse(k, N)

			r = c.G().Multiply(k).AffineX()
			r.Mod(r, N)
			if r.Sign() != 0 && kInv != nil {
				break
			}
		}

		e := hashToInt(hash, c)
		s = new(big.Int).Mul(priv.D, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, N) // N != 0
		if s.Sign() != 0 {
			break
		}
	}

	halfOrder := new(big.Int).Rsh(N, 1)
	if s.Cmp(halfOrder) > 0 {
		s.Sub(N, s)
	}
	return
}

// Verify verifies the signature in r, s of hash using the public key, pub. Its
// return value records whether the signature is valid. Most applications should
// use VerifyASN1 instead of dealing directly with r, s.
func Verify(pub *PublicKey, hash []byte, r, s *big.Int) bool {
	c := pub.Curve
	N := c.N()
	if N == nil {
		return false
	}

	if r.Sign() <= 0 || s.Sign() <= 0 {
		return false
	}
	if r.Cmp(N) >= 0 || s.Cmp(N) >= 0 {
		return false
	}

	// SEC 1, Version 2.0, Section 4.1.4
	e := hashToInt(hash, c)
	w := new(big.Int).ModInverse(s, N)

	u1 := e.Mul(e, w)
	u1.Mod(u1, N)
	u2 := w.Mul(r, w)
	u2.Mod(u2, N)

	// u1·G + u2·Q
	q := c.G().MultiplyTwo(u1, pub.Point, u2)
	if c.IsInfinity(q) {
		return false
	}
	x := q.AffineX()
	x.Mod(x, N)
	return x.Cmp(r) == 0
}

// VerifyASN1 verifies the DER encoded signature, sig, of hash using the
// public key, pub. Its return value records whether the signature is valid.
func VerifyASN1(pub *PublicKey, hash, sig []byte) bool {
	rBytes, sBytes, err := parseSignature(sig)
	if err != nil {
		return false
	}
	r, s := new(big.Int).SetBytes(rBytes), new(big.Int).SetBytes(sBytes)
	return Verify(pub, hash, r, s)
}

// ParseSignature splits a DER encoded signature into r and s.
func ParseSignature(sig []byte) (r, s *big.Int, err error) {
	rBytes, sBytes, err := parseSignature(sig)
	if err != nil {
		return nil, nil, err
	}
	return new(big.Int).SetBytes(rBytes), new(big.Int).SetBytes(sBytes), nil
}

func encodeSignature(r, s []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addASN1IntBytes(b, r)
		addASN1IntBytes(b, s)
	})
	return b.Bytes()
}

func parseSignature(sig []byte) (r, s []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, nil, errInvalidASN1
	}
	return r, s, nil
}

// addASN1IntBytes encodes in ASN.1 a positive integer represented as
// a big-endian byte slice with zero or more leading zeroes.
func addASN1IntBytes(b *cryptobyte.Builder, bytes []byte) {
	for len(bytes) > 0 && bytes[0] == 0 {
		bytes = bytes[1:]
	}
	if len(bytes) == 0 {
		b.SetError(errors.New("invalid integer"))
		return
	}
	b.AddASN1(asn1.INTEGER, func(c *cryptobyte.Builder) {
		if bytes[0]&0x80 != 0 {
			c.AddUint8(0)
		}
		c.AddBytes(bytes)
	})
}
