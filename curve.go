// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// curveB is the constant b of the secp256k1 curve equation y^2 = x^3 + b.
const curveB = 7

var (
	// generatorX and generatorY are the affine coordinates of the secp256k1
	// base point as defined in [SECG] section 2.4.1.
	generatorX = hexToFieldVal("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	generatorY = hexToFieldVal("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	// generator is the secp256k1 base point.  It is never mutated.
	generator = AffinePoint{x: generatorX, y: generatorY, finite: true}

	// generatorJacobian is the base point lifted to Jacobian coordinates.
	generatorJacobian = generator.AsJacobian()

	// curveOrder is the order n of the group generated by the base point.
	curveOrder = hexToScalar("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

// Generator returns the secp256k1 base point G.
func Generator() AffinePoint {
	return generator
}

// CurveOrder returns the order n of the secp256k1 group as a Scalar.
func CurveOrder() Scalar {
	return curveOrder
}

// isOnCurve returns whether or not the affine point (x,y) is on the curve.
func isOnCurve(fx, fy FieldVal) bool {
	// Elliptic curve equation for secp256k1 is: y^2 = x^3 + 7
	y2 := fy.Square()
	result := fx.Square().Mul(fx).AddInt(curveB)
	return y2.Equals(result)
}

// DecompressY attempts to calculate the Y coordinate for the given X coordinate
// such that the result pair is a point on the secp256k1 curve.  It adjusts Y
// based on the desired oddness and returns whether or not it was successful
// since not all X coordinates are valid.
func DecompressY(x FieldVal, odd bool) (FieldVal, bool) {
	// The curve equation for secp256k1 is: y^2 = x^3 + 7.  Thus
	// y = +-sqrt(x^3 + 7).
	//
	// The x coordinate must be invalid if there is no square root for the
	// calculated rhs because it means the X coordinate is not for a point on
	// the curve.
	x3PlusB := x.Square().Mul(x).AddInt(curveB)
	y, hasSqrt := x3PlusB.SquareRoot()
	if !hasSqrt {
		return FieldVal{}, false
	}
	if y.IsOdd() != odd {
		y = y.Negate()
	}
	return y, true
}
