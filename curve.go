// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecurve implements point arithmetic on short Weierstrass curves
// y² = x³ + ax + b over a prime field, together with the SEC1 point encoding.
//
// Points are kept in projective coordinates (x, y, z) where the affine point
// is (x/z, y/z). All operations return new points; a *Point is never modified
// after construction and may be shared between goroutines.
//
// The arithmetic is not constant time.
package ecurve

import (
	"math/big"
)

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// Curve holds the domain parameters of a curve y² = x³ + ax + b over GF(p).
type Curve struct {
	name     string
	p        *big.Int // the order of the underlying field
	a        *big.Int // the linear coefficient of the curve equation
	b        *big.Int // the constant of the curve equation
	n        *big.Int // the order of the base point
	h        *big.Int // the cofactor
	g        *Point   // the base point
	infinity *Point
	pLength  int // byte length of an encoded field element
}

// NewCurve returns the curve y² = x³ + ax + b over GF(p) with base point
// (gx, gy) of order n and cofactor h. The parameters are copied. n and h may
// be nil when unknown; Validate then skips the subgroup check.
func NewCurve(name string, p, a, b, gx, gy, n, h *big.Int) *Curve {
	c := &Curve{
		name:    name,
		p:       new(big.Int).Set(p),
		a:       new(big.Int).Set(a),
		b:       new(big.Int).Set(b),
		pLength: (p.BitLen() + 7) / 8,
	}
	if n != nil {
		c.n = new(big.Int).Set(n)
	}
	if h != nil {
		c.h = new(big.Int).Set(h)
	}
	c.infinity = newPoint(c, new(big.Int), big.NewInt(1), new(big.Int))
	c.g = newPoint(c, new(big.Int).Set(gx), new(big.Int).Set(gy), big.NewInt(1))
	return c
}

// Name returns the canonical name of the curve.
func (c *Curve) Name() string { return c.name }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns the linear coefficient of the curve equation.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant of the curve equation.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// N returns the order of the base point, or nil if it is unknown.
func (c *Curve) N() *big.Int {
	if c.n == nil {
		return nil
	}
	return new(big.Int).Set(c.n)
}

// H returns the cofactor, or nil if it is unknown.
func (c *Curve) H() *big.Int {
	if c.h == nil {
		return nil
	}
	return new(big.Int).Set(c.h)
}

// G returns the base point.
func (c *Curve) G() *Point { return c.g }

// PLength returns the number of bytes of an encoded field element.
func (c *Curve) PLength() int { return c.pLength }

// Infinity returns the identity element of the curve group. The same value is
// returned on every call.
func (c *Curve) Infinity() *Point { return c.infinity }

// IsInfinity reports whether q is the identity element. Any point with z = 0
// and y ≠ 0 is the identity, whatever its x coordinate.
func (c *Curve) IsInfinity(q *Point) bool {
	if q == c.infinity {
		return true
	}
	return q.z.Sign() == 0 && q.y.Sign() != 0
}

// Equal reports whether c and x have the same domain parameters.
func (c *Curve) Equal(x *Curve) bool {
	if c == x {
		return true
	}
	if x == nil {
		return false
	}
	return c.p.Cmp(x.p) == 0 &&
		c.a.Cmp(x.a) == 0 &&
		c.b.Cmp(x.b) == 0 &&
		optionalEqual(c.n, x.n) &&
		optionalEqual(c.h, x.h) &&
		c.g.Equal(x.g)
}

func optionalEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}

// polynomial returns x³ + ax + b mod p.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.a) // x² + a
	x3.Mul(x3, x)   // x³ + ax
	x3.Add(x3, c.b) // x³ + ax + b

	return x3.Mod(x3, c.p)
}

// IsOnCurve reports whether q satisfies the curve equation. The identity
// element is considered to be on the curve.
func (c *Curve) IsOnCurve(q *Point) bool {
	if c.IsInfinity(q) {
		return true
	}

	x, y := q.AffineX(), q.AffineY()
	if x.Sign() < 0 || x.Cmp(c.p) >= 0 || y.Sign() < 0 || y.Cmp(c.p) >= 0 {
		return false
	}

	// y² = x³ + ax + b
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, c.p)

	return c.polynomial(x).Cmp(y2) == 0
}

// Validate checks that q is a finite point on the curve lying in the subgroup
// generated by G. The subgroup check is skipped when the order is unknown.
func (c *Curve) Validate(q *Point) error {
	if c.IsInfinity(q) {
		return ErrPointAtInfinity
	}
	if !c.IsOnCurve(q) {
		return ErrNotOnCurve
	}
	if c.n != nil && !c.IsInfinity(q.Multiply(c.n)) {
		return ErrNotInSubgroup
	}
	return nil
}

// PointFromX returns the affine point with abscissa x whose ordinate has the
// given parity.
func (c *Curve) PointFromX(odd bool, x *big.Int) (*Point, error) {
	if x.Sign() < 0 || x.Cmp(c.p) >= 0 {
		return nil, ErrCoordinateRange
	}
	y := new(big.Int).ModSqrt(c.polynomial(x), c.p)
	if y == nil {
		return nil, ErrNoSquareRoot
	}
	if (y.Bit(0) == 1) != odd {
		y.Sub(c.p, y)
		y.Mod(y, c.p)
	}
	return newPoint(c, new(big.Int).Set(x), y, big.NewInt(1)), nil
}
