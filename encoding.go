// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecurve

import (
	"math/big"
)

// SEC 1, Version 2.0, Section 2.3.3 prefixes.
const (
	tagInfinity     = 0x00
	tagCompressed   = 0x02
	tagUncompressed = 0x04
)

// Bytes returns the SEC1 encoding of p in its default form (see Compressed).
func (p *Point) Bytes() []byte {
	return p.Encode(p.compressed)
}

// Encode returns the SEC1 encoding of p's affine coordinates, as specified in
// SEC 1, Version 2.0, Section 2.3.3. The identity element is encoded as the
// single byte 0x00. It panics if a coordinate does not fit in
// Curve().PLength() bytes.
func (p *Point) Encode(compressed bool) []byte {
	if p.curve.IsInfinity(p) {
		return []byte{tagInfinity}
	}

	x, y := p.AffineX(), p.AffineY()
	byteLen := p.curve.pLength

	if compressed {
		ret := make([]byte, 1+byteLen)
		ret[0] = tagCompressed | byte(y.Bit(0))
		x.FillBytes(ret[1:])
		return ret
	}

	ret := make([]byte, 1+2*byteLen)
	ret[0] = tagUncompressed
	x.FillBytes(ret[1 : 1+byteLen])
	y.FillBytes(ret[1+byteLen:])
	return ret
}

// DecodePoint parses a point serialized by Encode. The returned point uses
// the form it was decoded from as its default encoding. Compressed input is
// always on the curve; uncompressed input is checked against the curve
// equation. Subgroup membership is not checked, see Validate.
func (c *Curve) DecodePoint(data []byte) (*Point, error) {
	if len(data) == 0 {
		return nil, ErrInvalidLength
	}
	if data[0] == tagInfinity {
		if len(data) != 1 {
			return nil, ErrInvalidLength
		}
		return c.infinity, nil
	}

	byteLen := c.pLength
	switch data[0] {
	case tagCompressed, tagCompressed | 1:
		if len(data) != 1+byteLen {
			return nil, ErrInvalidLength
		}
		x := new(big.Int).SetBytes(data[1:])
		q, err := c.PointFromX(data[0]&1 == 1, x)
		if err != nil {
			return nil, err
		}
		return q, nil

	case tagUncompressed:
		if len(data) != 1+2*byteLen {
			return nil, ErrInvalidLength
		}
		x := new(big.Int).SetBytes(data[1 : 1+byteLen])
		y := new(big.Int).SetBytes(data[1+byteLen:])
		if x.Cmp(c.p) >= 0 || y.Cmp(c.p) >= 0 {
			return nil, ErrCoordinateRange
		}
		q := newPoint(c, x, y, big.NewInt(1))
		if !c.IsOnCurve(q) {
			return nil, ErrNotOnCurve
		}
		q.compressed = false
		return q, nil

	default:
		return nil, ErrInvalidTag
	}
}
