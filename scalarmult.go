// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// scalarBits is the number of bits of a Scalar processed by ScalarMult.
const scalarBits = 256

// ScalarMult returns k*point in constant time with respect to k.
//
// It uses left-to-right double-and-add over every bit of k: the accumulator
// starts at the point at infinity and is doubled for each bit, and the sum of
// the accumulator and the point is always computed but only kept when the bit
// is set.  The scalar is not reduced, so multiples of the group order produce
// the point at infinity.
func ScalarMult(k Scalar, point JacobianPoint) JacobianPoint {
	acc := InfinityJacobian()
	for i := scalarBits - 1; i >= 0; i-- {
		acc = acc.Double()
		sum := acc.addConst(point)
		acc = selectJacobian(k.bit(uint(i)), sum, acc)
	}
	return acc
}

// ScalarBaseMult returns k*G where G is the base point of the group.
func ScalarBaseMult(k Scalar) JacobianPoint {
	return ScalarMult(k, generatorJacobian)
}

// DerivePublicKey returns the public key k*base in affine coordinates, where k
// is a private scalar and base is normally the generator returned by
// Generator.
//
// ErrDegenerateScalar is returned when k is zero, when k is not less than the
// group order, or when the product is the point at infinity.
// ErrPointAtInfinity is returned when base is the point at infinity.
func DerivePublicKey(k Scalar, base AffinePoint) (AffinePoint, error) {
	if k.IsZero() {
		return AffinePoint{}, makeError(ErrDegenerateScalar,
			"scalar is zero")
	}
	if k.Overflows() {
		return AffinePoint{}, makeError(ErrDegenerateScalar,
			"scalar is not less than the group order")
	}
	if base.IsInfinity() {
		return AffinePoint{}, makeError(ErrPointAtInfinity,
			"base point is the point at infinity")
	}

	// Do the multiplication in Jacobian coordinates and convert the result to
	// affine with a single inversion.
	pub := ScalarMult(k, base.AsJacobian()).ToAffine()
	if pub.IsInfinity() {
		return AffinePoint{}, makeError(ErrDegenerateScalar,
			"scalar multiple of the base point is the point at infinity")
	}
	return pub, nil
}
