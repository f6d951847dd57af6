// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecurve

import (
	"errors"
	"fmt"
)

var (
	ErrMissingX = errors.New("missing X coordinate")
	ErrMissingY = errors.New("missing Y coordinate")
	ErrMissingZ = errors.New("missing Z coordinate")

	ErrPointAtInfinity = errors.New("ecurve: point is at infinity")
	ErrNotOnCurve      = errors.New("ecurve: point is not on the curve")
	ErrNotInSubgroup   = errors.New("ecurve: point is not a scalar multiple of G")
	ErrNoSquareRoot    = errors.New("ecurve: x does not correspond to a point on the curve")

	ErrInvalidLength   = errors.New("decode: invalid sequence length")
	ErrInvalidTag      = errors.New("decode: invalid sequence tag")
	ErrCoordinateRange = errors.New("decode: coordinate is not reduced modulo p")

	ErrUnknownCurve = errors.New("ecurve: unknown curve")
)

// InvalidPointError is returned when a point cannot be constructed from the
// given coordinates.
type InvalidPointError struct {
	Curve string
	Err   error
}

func (e *InvalidPointError) Error() string {
	if e.Curve != "" {
		return fmt.Sprintf("invalid point on %s: %v", e.Curve, e.Err)
	}
	return fmt.Sprintf("invalid point: %v", e.Err)
}

func (e *InvalidPointError) Unwrap() error {
	return e.Err
}
