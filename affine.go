// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
)

// These constants define the lengths and format bytes of the compressed point
// encoding per ANSI X9.62-1998.
const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed point.
	PubKeyBytesLenCompressed = 33

	// PubKeyFormatCompressedEven is the identifier prefix byte for a point
	// whose y coordinate is even when serialized in the compressed format.
	PubKeyFormatCompressedEven byte = 0x02

	// PubKeyFormatCompressedOdd is the identifier prefix byte for a point
	// whose y coordinate is odd when serialized in the compressed format.
	PubKeyFormatCompressedOdd byte = 0x03
)

// AffinePoint is a point on the secp256k1 curve in affine coordinates (x, y),
// or the point at infinity.  Every finite AffinePoint satisfies the curve
// equation y^2 = x^3 + 7; the constructors enforce it.
//
// AffinePoint is the representation used at the data interchange boundary.
// Its addition law needs a field inversion per operation, so repeated
// arithmetic such as scalar multiplication is done with JacobianPoint instead.
//
// The zero value is the point at infinity.
type AffinePoint struct {
	x, y   FieldVal
	finite bool
}

// NewAffinePoint returns the finite point with the provided coordinates.  It
// returns ErrNotOnCurve when the coordinates do not satisfy the curve
// equation.
func NewAffinePoint(x, y FieldVal) (AffinePoint, error) {
	if !isOnCurve(x, y) {
		str := fmt.Sprintf("invalid point: (%v, %v) is not on the secp256k1 "+
			"curve", x, y)
		return AffinePoint{}, makeError(ErrNotOnCurve, str)
	}
	return AffinePoint{x: x, y: y, finite: true}, nil
}

// InfinityPoint returns the point at infinity, which is the identity element
// of the group.
func InfinityPoint() AffinePoint {
	return AffinePoint{}
}

// X returns the x coordinate of the point.  It is zero for the point at
// infinity.
func (p AffinePoint) X() FieldVal {
	return p.x
}

// Y returns the y coordinate of the point.  It is zero for the point at
// infinity.
func (p AffinePoint) Y() FieldVal {
	return p.y
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p AffinePoint) IsInfinity() bool {
	return !p.finite
}

// IsOnCurve returns whether or not the point satisfies the curve equation.  The
// point at infinity is considered to be on the curve.
func (p AffinePoint) IsOnCurve() bool {
	if !p.finite {
		return true
	}
	return isOnCurve(p.x, p.y)
}

// Equals returns whether or not the two points are the same.  Two points are
// equal when both are the point at infinity, or both are finite with equal
// coordinates.
func (p AffinePoint) Equals(q AffinePoint) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Negate returns -p, which is (x, -y) for a finite point and the point at
// infinity otherwise.
func (p AffinePoint) Negate() AffinePoint {
	if !p.finite {
		return p
	}
	return AffinePoint{x: p.x, y: p.y.Negate(), finite: true}
}

// affineAddCase identifies which branch of the affine addition law applies to
// a pair of points.
type affineAddCase uint8

const (
	// affineAddLeftIdentity means the left point is infinity: ∞ + Q = Q.
	affineAddLeftIdentity affineAddCase = iota

	// affineAddRightIdentity means the right point is infinity: P + ∞ = P.
	affineAddRightIdentity

	// affineAddInverse means the points are additive inverses: P + (-P) = ∞.
	// This includes doubling a point with y = 0.
	affineAddInverse

	// affineAddDouble means the points are equal and the tangent slope is
	// used.
	affineAddDouble

	// affineAddDistinct means the points have different x coordinates and the
	// chord slope is used.
	affineAddDistinct
)

// classifyAffineAdd returns the case of the addition law that applies to p+q.
func classifyAffineAdd(p, q AffinePoint) affineAddCase {
	switch {
	case !p.finite:
		return affineAddLeftIdentity
	case !q.finite:
		return affineAddRightIdentity
	case !p.x.Equals(q.x):
		return affineAddDistinct
	case p.y.Equals(q.y.Negate()):
		return affineAddInverse
	}

	// Two curve points that share an x coordinate have y coordinates that are
	// either equal or opposite.
	return affineAddDouble
}

// Add returns p+q using the affine addition law.
func (p AffinePoint) Add(q AffinePoint) AffinePoint {
	var lambda FieldVal
	switch classifyAffineAdd(p, q) {
	case affineAddLeftIdentity:
		return q
	case affineAddRightIdentity:
		return p
	case affineAddInverse:
		return AffinePoint{}

	case affineAddDouble:
		// λ = 3x^2 / 2y.  y is nonzero since that case is an inverse.
		num := p.x.Square().MulInt(3)
		den := p.y.MulInt(2)
		lambda = num.Mul(den.inverse())

	case affineAddDistinct:
		// λ = (y2 - y1) / (x2 - x1).  x1 != x2 so the denominator is
		// nonzero.
		num := q.y.Sub(p.y)
		den := q.x.Sub(p.x)
		lambda = num.Mul(den.inverse())
	}

	// x3 = λ^2 - x1 - x2
	// y3 = λ(x1 - x3) - y1
	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return AffinePoint{x: x3, y: y3, finite: true}
}

// AsJacobian returns the point lifted into Jacobian projective coordinates.
// The point at infinity maps to (1, 1, 0) and a finite point (x, y) maps to
// (x, y, 1).
func (p AffinePoint) AsJacobian() JacobianPoint {
	if !p.finite {
		return InfinityJacobian()
	}
	return JacobianPoint{x: p.x, y: p.y, z: fieldOne}
}

// SerializeCompressed serializes the point in the 33-byte compressed format:
// a format byte of 0x02 or 0x03 for an even or odd y coordinate followed by
// the 32-byte big-endian x coordinate.
//
// The point at infinity has no compressed encoding, in which case
// ErrPointAtInfinity is returned.
func (p AffinePoint) SerializeCompressed() ([]byte, error) {
	if !p.finite {
		return nil, makeError(ErrPointAtInfinity, "the point at infinity "+
			"has no compressed encoding")
	}
	return p.serializeCompressed(), nil
}

// serializeCompressed encodes a finite point in the compressed format.
func (p AffinePoint) serializeCompressed() []byte {
	b := make([]byte, PubKeyBytesLenCompressed)
	format := PubKeyFormatCompressedEven
	if p.y.IsOdd() {
		format = PubKeyFormatCompressedOdd
	}
	b[0] = format
	x := p.x.Bytes()
	copy(b[1:], x[:])
	return b
}

// ParseCompressed parses a point in the 33-byte compressed format and ensures
// it is on the secp256k1 curve.
//
// ErrInvalidEncoding is returned when the encoding has the wrong length, an
// unknown format byte, an x coordinate greater than or equal to the field
// prime, or an x coordinate for which no curve point exists.
func ParseCompressed(b []byte) (AffinePoint, error) {
	if len(b) != PubKeyBytesLenCompressed {
		str := fmt.Sprintf("malformed compressed point: invalid length: %d",
			len(b))
		return AffinePoint{}, makeError(ErrInvalidEncoding, str)
	}

	format := b[0]
	if format != PubKeyFormatCompressedEven &&
		format != PubKeyFormatCompressedOdd {

		str := fmt.Sprintf("invalid compressed point: unsupported format: "+
			"%x", format)
		return AffinePoint{}, makeError(ErrInvalidEncoding, str)
	}

	// Parse the x coordinate while ensuring that it is in the allowed range.
	var xb [32]byte
	copy(xb[:], b[1:])
	x, overflow := FieldValFromBytes(&xb)
	if overflow {
		str := "invalid compressed point: x >= field prime"
		return AffinePoint{}, makeError(ErrInvalidEncoding, str)
	}

	// Attempt to calculate the y coordinate for the given x coordinate such
	// that the result pair is a point on the secp256k1 curve and the solution
	// with the desired oddness is chosen.
	wantOddY := format == PubKeyFormatCompressedOdd
	y, ok := DecompressY(x, wantOddY)
	if !ok {
		str := fmt.Sprintf("invalid compressed point: x coordinate %v is "+
			"not on the secp256k1 curve", x)
		return AffinePoint{}, makeError(ErrInvalidEncoding, str)
	}
	return AffinePoint{x: x, y: y, finite: true}, nil
}
