package ecurve

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyCurve is y² = x³ + 2x + 3 over GF(97), small enough to enumerate.
func toyCurve(t *testing.T) (*Curve, []*Point) {
	t.Helper()
	p, a, b := big.NewInt(97), big.NewInt(2), big.NewInt(3)

	type xy struct{ x, y int64 }
	var affine []xy
	for x := int64(0); x < 97; x++ {
		rhs := (x*x*x + 2*x + 3) % 97
		for y := int64(0); y < 97; y++ {
			if y*y%97 == rhs {
				affine = append(affine, xy{x, y})
			}
		}
	}
	require.NotEmpty(t, affine)

	c := NewCurve("toy", p, a, b, big.NewInt(affine[0].x), big.NewInt(affine[0].y), nil, nil)
	points := []*Point{c.Infinity()}
	for _, q := range affine {
		pt, err := NewAffinePoint(c, big.NewInt(q.x), big.NewInt(q.y))
		require.NoError(t, err)
		points = append(points, pt)
	}
	return c, points
}

func TestToyCurveGroupLaw(t *testing.T) {
	c, points := toyCurve(t)
	order := big.NewInt(int64(len(points)))

	for _, p := range points {
		require.True(t, c.IsOnCurve(p))
		assert.True(t, p.Double().Equal(p.Add(p)), "2·%v", p)
		assert.True(t, c.IsInfinity(p.Multiply(order)), "%d·%v", len(points), p)

		for _, q := range points {
			sum := p.Add(q)
			assert.True(t, c.IsOnCurve(sum), "%v + %v = %v", p, q, sum)
			assert.True(t, sum.Equal(q.Add(p)))
		}
	}
}

func TestToyCurveMultiplyMatchesRepeatedAddition(t *testing.T) {
	c, points := toyCurve(t)
	for _, p := range points[1:] {
		acc := c.Infinity()
		for k := int64(0); k <= int64(len(points)); k++ {
			assert.True(t, p.Multiply(big.NewInt(k)).Equal(acc), "%d·%v", k, p)
			acc = acc.Add(p)
		}
	}
}

func TestIsInfinity(t *testing.T) {
	c := Secp256k1()
	assert.True(t, c.IsInfinity(c.Infinity()))
	assert.False(t, c.IsInfinity(c.G()))
	assert.Same(t, c.Infinity(), c.Infinity())

	// z = 0 with y = 0 is not a valid encoding of the identity
	p, err := NewPoint(c, big.NewInt(0), big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	assert.False(t, c.IsInfinity(p))
}

func TestIsOnCurve(t *testing.T) {
	c := Secp256k1()
	assert.True(t, c.IsOnCurve(c.G()))
	assert.True(t, c.IsOnCurve(c.Infinity()))

	bad, err := NewAffinePoint(c, big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)
	assert.False(t, c.IsOnCurve(bad))
}

func TestValidate(t *testing.T) {
	c := Secp256k1()
	assert.NoError(t, c.Validate(c.G()))
	assert.NoError(t, c.Validate(c.G().Multiply(big.NewInt(31337))))
	assert.ErrorIs(t, c.Validate(c.Infinity()), ErrPointAtInfinity)

	bad, err := NewAffinePoint(c, big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(bad), ErrNotOnCurve)

	// Same curve with a wrong order: G no longer has order n.
	wrong := NewCurve("wrong-order", c.P(), c.A(), c.B(), c.G().AffineX(), c.G().AffineY(),
		new(big.Int).Sub(c.N(), big.NewInt(1)), c.H())
	assert.ErrorIs(t, wrong.Validate(wrong.G()), ErrNotInSubgroup)

	// Without an order only the curve equation is checked.
	unknown := NewCurve("unknown-order", c.P(), c.A(), c.B(), c.G().AffineX(), c.G().AffineY(), nil, nil)
	assert.NoError(t, unknown.Validate(unknown.G()))
	assert.Nil(t, unknown.N())
	assert.Nil(t, unknown.H())
}

func TestPointFromX(t *testing.T) {
	c := Secp256k1()
	gx := c.G().AffineX()

	// Gy is even.
	even, err := c.PointFromX(false, gx)
	require.NoError(t, err)
	assert.True(t, even.Equal(c.G()))

	odd, err := c.PointFromX(true, gx)
	require.NoError(t, err)
	assert.True(t, odd.Equal(c.G().Negate()))
	assert.Equal(t, uint(1), odd.AffineY().Bit(0))

	_, err = c.PointFromX(false, c.P())
	assert.ErrorIs(t, err, ErrCoordinateRange)

	_, err = c.PointFromX(false, nonAbscissa(t, c))
	assert.ErrorIs(t, err, ErrNoSquareRoot)
}

// nonAbscissa returns the smallest x for which x³ + ax + b is not a square.
func nonAbscissa(t *testing.T, c *Curve) *big.Int {
	t.Helper()
	for x := int64(1); x < 1000; x++ {
		bx := big.NewInt(x)
		if _, err := c.PointFromX(false, bx); errors.Is(err, ErrNoSquareRoot) {
			return bx
		}
	}
	t.Fatal("no x without a square root found")
	return nil
}

func TestCurveEqual(t *testing.T) {
	c := Secp256k1()
	clone := NewCurve("clone", c.P(), c.A(), c.B(), c.G().AffineX(), c.G().AffineY(), c.N(), c.H())

	assert.True(t, c.Equal(c))
	assert.True(t, c.Equal(clone))
	assert.False(t, c.Equal(P256()))
	assert.False(t, c.Equal(nil))
}

func TestNewCurveCopiesParameters(t *testing.T) {
	p := big.NewInt(97)
	c := NewCurve("toy", p, big.NewInt(2), big.NewInt(3), big.NewInt(3), big.NewInt(6), nil, nil)
	p.SetInt64(101)

	assert.Equal(t, int64(97), c.P().Int64())
	assert.Equal(t, 1, c.PLength())
	c.P().SetInt64(5)
	assert.Equal(t, int64(97), c.P().Int64())
}
