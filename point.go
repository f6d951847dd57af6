// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecurve

// The formulas below operate on projective coordinates: a point (x, y, z)
// stands for the affine point (x/z, y/z). Addition and doubling never invert
// z; the single inversion happens when the affine coordinates are read, and is
// cached on the point.

import (
	"math/big"
	"sync"
)

// Point is a point on a Curve in projective coordinates.
type Point struct {
	curve   *Curve
	x, y, z *big.Int

	// compressed selects the form used by Bytes.
	compressed bool

	zInvOnce sync.Once
	zInv     *big.Int
}

// newPoint takes ownership of x, y and z.
func newPoint(c *Curve, x, y, z *big.Int) *Point {
	return &Point{curve: c, x: x, y: y, z: z, compressed: true}
}

// NewPoint returns the point with projective coordinates (x, y, z) on c. All
// three coordinates must be given; z = 0 is allowed and, with y ≠ 0, denotes
// the identity element. The coordinates are copied.
func NewPoint(c *Curve, x, y, z *big.Int) (*Point, error) {
	switch {
	case x == nil:
		return nil, &InvalidPointError{Curve: c.name, Err: ErrMissingX}
	case y == nil:
		return nil, &InvalidPointError{Curve: c.name, Err: ErrMissingY}
	case z == nil:
		return nil, &InvalidPointError{Curve: c.name, Err: ErrMissingZ}
	}
	return newPoint(c, new(big.Int).Set(x), new(big.Int).Set(y), new(big.Int).Set(z)), nil
}

// MustNewPoint is like NewPoint but panics if a coordinate is missing.
func MustNewPoint(c *Curve, x, y, z *big.Int) *Point {
	p, err := NewPoint(c, x, y, z)
	if err != nil {
		panic("ecurve: " + err.Error())
	}
	return p
}

// NewAffinePoint returns the point (x, y, 1) on c.
func NewAffinePoint(c *Curve, x, y *big.Int) (*Point, error) {
	return NewPoint(c, x, y, one)
}

// Curve returns the curve the point belongs to.
func (p *Point) Curve() *Curve { return p.curve }

// X returns the projective x coordinate.
func (p *Point) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns the projective y coordinate.
func (p *Point) Y() *big.Int { return new(big.Int).Set(p.y) }

// Z returns the projective z coordinate.
func (p *Point) Z() *big.Int { return new(big.Int).Set(p.z) }

// Compressed reports the encoding form used by Bytes.
func (p *Point) Compressed() bool { return p.compressed }

// WithCompression returns a copy of p whose Bytes method uses the given form.
func (p *Point) WithCompression(compressed bool) *Point {
	q := newPoint(p.curve, p.x, p.y, p.z)
	q.compressed = compressed
	return q
}

// ZInv returns z⁻¹ mod p. It is computed on first use and cached. If z has no
// inverse (the identity element), ZInv returns 0.
func (p *Point) ZInv() *big.Int {
	p.zInvOnce.Do(func() {
		inv := new(big.Int).ModInverse(p.z, p.curve.p)
		if inv == nil {
			inv = new(big.Int)
		}
		p.zInv = inv
	})
	return new(big.Int).Set(p.zInv)
}

// AffineX returns x/z mod p.
func (p *Point) AffineX() *big.Int {
	x := new(big.Int).Mul(p.x, p.ZInv())
	return x.Mod(x, p.curve.p)
}

// AffineY returns y/z mod p.
func (p *Point) AffineY() *big.Int {
	y := new(big.Int).Mul(p.y, p.ZInv())
	return y.Mod(y, p.curve.p)
}

// crossTerm returns a·b − c·d mod p.
func (p *Point) crossTerm(a, b, c, d *big.Int) *big.Int {
	t := new(big.Int).Mul(a, b)
	t.Sub(t, new(big.Int).Mul(c, d))
	return t.Mod(t, p.curve.p)
}

// Equal reports whether p and q represent the same point. All
// representations of the identity element are equal to each other.
func (p *Point) Equal(q *Point) bool {
	if p == q {
		return true
	}
	if q == nil {
		return false
	}
	if p.curve.IsInfinity(p) {
		return p.curve.IsInfinity(q)
	}
	if p.curve.IsInfinity(q) {
		return false
	}

	// u = y2·z1 − y1·z2
	if p.crossTerm(q.y, p.z, p.y, q.z).Sign() != 0 {
		return false
	}
	// v = x2·z1 − x1·z2
	return p.crossTerm(q.x, p.z, p.x, q.z).Sign() == 0
}

// Negate returns −p.
func (p *Point) Negate() *Point {
	y := new(big.Int).Sub(p.curve.p, p.y)
	y.Mod(y, p.curve.p)
	return newPoint(p.curve, p.x, y, p.z)
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	c := p.curve
	if c.IsInfinity(p) {
		return q
	}
	if c.IsInfinity(q) {
		return p
	}

	x1, y1, z1 := p.x, p.y, p.z
	x2, y2, z2 := q.x, q.y, q.z

	u := p.crossTerm(y2, z1, y1, z2)
	v := p.crossTerm(x2, z1, x1, z2)

	if v.Sign() == 0 {
		if u.Sign() == 0 {
			return p.Double()
		}
		return c.infinity
	}

	v2 := new(big.Int).Mul(v, v)
	v3 := new(big.Int).Mul(v2, v)
	x1v2 := new(big.Int).Mul(x1, v2)
	zu2 := new(big.Int).Mul(u, u)
	zu2.Mul(zu2, z1)

	// x3 = v·(z2·(zu² − 2·x1·v²) − v³)
	x3 := new(big.Int).Lsh(x1v2, 1)
	x3.Sub(zu2, x3)
	x3.Mul(x3, z2)
	x3.Sub(x3, v3)
	x3.Mul(x3, v)
	x3.Mod(x3, c.p)

	// y3 = z2·(3·x1·v²·u − y1·v³ − zu²·u) + u·v³
	y3 := new(big.Int).Mul(x1v2, three)
	y3.Mul(y3, u)
	y3.Sub(y3, new(big.Int).Mul(y1, v3))
	y3.Sub(y3, new(big.Int).Mul(zu2, u))
	y3.Mul(y3, z2)
	y3.Add(y3, new(big.Int).Mul(u, v3))
	y3.Mod(y3, c.p)

	// z3 = v³·z1·z2
	z3 := new(big.Int).Mul(v3, z1)
	z3.Mul(z3, z2)
	z3.Mod(z3, c.p)

	return newPoint(c, x3, y3, z3)
}

// Double returns 2·p.
func (p *Point) Double() *Point {
	c := p.curve
	if c.IsInfinity(p) {
		return p
	}
	if p.y.Sign() == 0 {
		return c.infinity
	}

	x1, y1 := p.x, p.y

	y1z1 := new(big.Int).Mul(y1, p.z)
	y1z1.Mod(y1z1, c.p)
	y1sqz1 := new(big.Int).Mul(y1z1, y1)
	y1sqz1.Mod(y1sqz1, c.p)

	// w = 3·x² + a·z²
	w := new(big.Int).Mul(x1, x1)
	w.Mul(w, three)
	if c.a.Sign() != 0 {
		az2 := new(big.Int).Mul(p.z, p.z)
		az2.Mul(az2, c.a)
		w.Add(w, az2)
	}
	w.Mod(w, c.p)

	// x3 = 2·y1z1·(w² − 8·x·y1sqz1)
	x3 := new(big.Int).Mul(w, w)
	t := new(big.Int).Lsh(x1, 3)
	t.Mul(t, y1sqz1)
	x3.Sub(x3, t)
	x3.Lsh(x3, 1)
	x3.Mul(x3, y1z1)
	x3.Mod(x3, c.p)

	// y3 = 4·y1sqz1·(3·w·x − 2·y1sqz1) − w³
	y3 := new(big.Int).Mul(w, three)
	y3.Mul(y3, x1)
	y3.Sub(y3, t.Lsh(y1sqz1, 1))
	y3.Lsh(y3, 2)
	y3.Mul(y3, y1sqz1)
	y3.Sub(y3, new(big.Int).Exp(w, three, nil))
	y3.Mod(y3, c.p)

	// z3 = 8·y1z1³
	z3 := new(big.Int).Exp(y1z1, three, nil)
	z3.Lsh(z3, 3)
	z3.Mod(z3, c.p)

	return newPoint(c, x3, y3, z3)
}

// Multiply returns k·p. The scalar is recoded on the fly into non-adjacent
// form by comparing the bits of k and 3k. k must not be negative; callers
// normally reduce it modulo the curve order first.
func (p *Point) Multiply(k *big.Int) *Point {
	if k.Sign() < 0 {
		panic("ecurve: negative scalar")
	}
	c := p.curve
	if c.IsInfinity(p) {
		return p
	}
	if k.Sign() == 0 {
		return c.infinity
	}

	e := k
	h := new(big.Int).Mul(e, three)
	neg := p.Negate()

	r := p
	for i := h.BitLen() - 2; i > 0; i-- {
		hBit := h.Bit(i)
		eBit := e.Bit(i)

		r = r.Double()
		if hBit != eBit {
			if hBit == 1 {
				r = r.Add(p)
			} else {
				r = r.Add(neg)
			}
		}
	}
	return r
}

// MultiplyTwo returns j·p + k·q using a single shared chain of doublings.
// Neither scalar may be negative.
func (p *Point) MultiplyTwo(j *big.Int, q *Point, k *big.Int) *Point {
	if j.Sign() < 0 || k.Sign() < 0 {
		panic("ecurve: negative scalar")
	}
	both := p.Add(q)

	r := p.curve.infinity
	for i := max(j.BitLen(), k.BitLen()) - 1; i >= 0; i-- {
		jBit, kBit := j.Bit(i), k.Bit(i)

		r = r.Double()
		switch {
		case jBit == 1 && kBit == 1:
			r = r.Add(both)
		case jBit == 1:
			r = r.Add(p)
		case kBit == 1:
			r = r.Add(q)
		}
	}
	return r
}

// String returns the affine coordinates of p in decimal.
func (p *Point) String() string {
	if p.curve.IsInfinity(p) {
		return "(INFINITY)"
	}
	return "(" + p.AffineX().String() + "," + p.AffineY().String() + ")"
}
