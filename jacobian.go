// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
)

// JacobianPoint is an element of the group formed by the secp256k1 curve in
// Jacobian projective coordinates and thus represents a point on the curve.
//
// The triple (X, Y, Z) corresponds to the affine point (X/Z^2, Y/Z^3) when Z is
// nonzero, and Z = 0 denotes the point at infinity regardless of X and Y.  Any
// triple scaled as (λ^2*X, λ^3*Y, λ*Z) for nonzero λ represents the same
// point, so points must be compared with Equals rather than by coordinates.
//
// A JacobianPoint is immutable.  Addition and doubling avoid field inversions
// entirely, and the single inversion needed to recover affine coordinates is
// deferred to ToAffine.
type JacobianPoint struct {
	// The X coordinate in Jacobian projective coordinates.  The affine point is
	// X/z^2.
	x FieldVal

	// The Y coordinate in Jacobian projective coordinates.  The affine point is
	// Y/z^3.
	y FieldVal

	// The Z coordinate in Jacobian projective coordinates.
	z FieldVal
}

// NewJacobianPoint returns the Jacobian point with the provided X, Y, and Z
// coordinates.  ErrNotOnCurve is returned unless Z is zero or the coordinates
// satisfy the projective curve equation Y^2 = X^3 + 7*Z^6.
func NewJacobianPoint(x, y, z FieldVal) (JacobianPoint, error) {
	p := JacobianPoint{x: x, y: y, z: z}
	if !p.IsOnCurve() {
		str := fmt.Sprintf("invalid point: (%v, %v, %v) is not on the "+
			"secp256k1 curve", x, y, z)
		return JacobianPoint{}, makeError(ErrNotOnCurve, str)
	}
	return p, nil
}

// InfinityJacobian returns the point at infinity in Jacobian coordinates as
// (1, 1, 0).
func InfinityJacobian() JacobianPoint {
	return JacobianPoint{x: fieldOne, y: fieldOne}
}

// X returns the X coordinate in Jacobian projective coordinates.
func (p JacobianPoint) X() FieldVal {
	return p.x
}

// Y returns the Y coordinate in Jacobian projective coordinates.
func (p JacobianPoint) Y() FieldVal {
	return p.y
}

// Z returns the Z coordinate in Jacobian projective coordinates.
func (p JacobianPoint) Z() FieldVal {
	return p.z
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p JacobianPoint) IsInfinity() bool {
	return p.z.IsZero()
}

// IsOnCurve returns whether or not the point satisfies the curve equation.  The
// point at infinity is considered to be on the curve.
func (p JacobianPoint) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}

	// Elliptic curve equation for secp256k1 is: y^2 = x^3 + 7
	// In Jacobian coordinates, Y = y/z^3 and X = x/z^2
	// Thus:
	// (y/z^3)^2 = (x/z^2)^3 + 7
	// y^2/z^6 = x^3/z^6 + 7
	// y^2 = x^3 + 7*z^6
	z2 := p.z.Square()
	z6 := z2.Square().Mul(z2)
	y2 := p.y.Square()
	result := p.x.Square().Mul(p.x).Add(z6.MulInt(curveB))
	return y2.Equals(result)
}

// ToAffine returns the point in affine coordinates.  This is the only place a
// field inversion is needed: z^-1 is computed once and the affine coordinates
// are x = X*z^-2 and y = Y*z^-3.
func (p JacobianPoint) ToAffine() AffinePoint {
	if p.IsInfinity() {
		return AffinePoint{}
	}

	zInv := p.z.inverse()    // zInv = Z^-1
	zInv2 := zInv.Square()   // zInv2 = Z^-2
	zInv3 := zInv2.Mul(zInv) // zInv3 = Z^-3
	return AffinePoint{
		x:      p.x.Mul(zInv2),
		y:      p.y.Mul(zInv3),
		finite: true,
	}
}

// Negate returns -p, which is (X, -Y, Z).
func (p JacobianPoint) Negate() JacobianPoint {
	return JacobianPoint{x: p.x, y: p.y.Negate(), z: p.z}
}

// Equals returns whether or not the two points represent the same affine
// point.  The coordinates are compared after cross-multiplying by the powers
// of Z, so any two representatives of the same point are equal.
func (p JacobianPoint) Equals(q JacobianPoint) bool {
	pInf, qInf := p.IsInfinity(), q.IsInfinity()
	if pInf || qInf {
		return pInf == qInf
	}
	t := newJacobianAddTerms(p, q)
	return t.u1.Equals(t.u2) && t.s1.Equals(t.s2)
}

// EqualsAffine returns whether or not the point represents the provided affine
// point.
func (p JacobianPoint) EqualsAffine(a AffinePoint) bool {
	return p.Equals(a.AsJacobian())
}

// Double returns 2*p.
//
// The formulas yield Z3 = 2*Y1*Z1, which is zero both when p is the point at
// infinity and when Y1 = 0, so those cases produce the point at infinity
// without any special handling.
func (p JacobianPoint) Double() JacobianPoint {
	// Point doubling formula for Jacobian coordinates for the secp256k1
	// curve:
	//
	// X3 = (3*X1^2)^2 - 8*X1*Y1^2
	// Y3 = (3*X1^2)*(4*X1*Y1^2 - X3) - 8*Y1^4
	// Z3 = 2*Y1*Z1
	//
	// This uses the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
	//
	// In particular it performs the calculations using the following:
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	// Z3 = 2*Y1*Z1
	//
	// This results in a cost of 1 field multiplication, 5 field squarings,
	// 6 field additions, and 5 integer multiplications.
	a := p.x.Square()                                // A = X1^2
	b := p.y.Square()                                // B = Y1^2
	c := b.Square()                                  // C = B^2
	d := p.x.Add(b).Square().Sub(a).Sub(c).MulInt(2) // D = 2*((X1+B)^2-A-C)
	e := a.MulInt(3)                                 // E = 3*A
	f := e.Square()                                  // F = E^2
	x3 := f.Sub(d.MulInt(2))                         // X3 = F-2*D
	y3 := e.Mul(d.Sub(x3)).Sub(c.MulInt(8))          // Y3 = E*(D-X3)-8*C
	z3 := p.y.Mul(p.z).MulInt(2)                     // Z3 = 2*Y1*Z1
	return JacobianPoint{x: x3, y: y3, z: z3}
}

// jacobianAddCase identifies which branch of the addition law applies to a
// pair of Jacobian points.
type jacobianAddCase uint8

const (
	// jacobianAddLeftIdentity means the left point is infinity: ∞ + Q = Q.
	jacobianAddLeftIdentity jacobianAddCase = iota

	// jacobianAddRightIdentity means the right point is infinity: P + ∞ = P.
	jacobianAddRightIdentity

	// jacobianAddDouble means both points represent the same affine point.
	jacobianAddDouble

	// jacobianAddInverse means the points are additive inverses.
	jacobianAddInverse

	// jacobianAddGeneric means the points have different affine x
	// coordinates.
	jacobianAddGeneric
)

// jacobianAddTerms houses the intermediate values shared by the classification
// of an addition and the generic addition formulas.  The x and y coordinates of
// both points are scaled to a common denominator so they can be compared
// regardless of their Z values.
type jacobianAddTerms struct {
	p, q       JacobianPoint
	z1z1, z2z2 FieldVal // Z1^2, Z2^2
	u1, u2     FieldVal // X1*Z2^2, X2*Z1^2
	s1, s2     FieldVal // Y1*Z2^3, Y2*Z1^3
}

// newJacobianAddTerms computes the common denominator terms for p and q.
func newJacobianAddTerms(p, q JacobianPoint) jacobianAddTerms {
	t := jacobianAddTerms{p: p, q: q}
	t.z1z1 = p.z.Square()           // Z1Z1 = Z1^2
	t.z2z2 = q.z.Square()           // Z2Z2 = Z2^2
	t.u1 = p.x.Mul(t.z2z2)          // U1 = X1*Z2Z2
	t.u2 = q.x.Mul(t.z1z1)          // U2 = X2*Z1Z1
	t.s1 = p.y.Mul(q.z).Mul(t.z2z2) // S1 = Y1*Z2*Z2Z2
	t.s2 = q.y.Mul(p.z).Mul(t.z1z1) // S2 = Y2*Z1*Z1Z1
	return t
}

// classify returns the case of the addition law that applies.
func (t *jacobianAddTerms) classify() jacobianAddCase {
	switch {
	case t.p.IsInfinity():
		return jacobianAddLeftIdentity
	case t.q.IsInfinity():
		return jacobianAddRightIdentity
	case !t.u1.Equals(t.u2):
		return jacobianAddGeneric
	case t.s1.Equals(t.s2):
		return jacobianAddDouble
	}

	// When the x coordinates are the same for two points on the curve, the y
	// coordinates either must be the same, in which case it is point doubling,
	// or they are opposite and the result is the point at infinity.
	return jacobianAddInverse
}

// sum computes p+q with the generic addition formulas.  It is only correct when
// the points are finite and have different affine x coordinates.
func (t *jacobianAddTerms) sum() JacobianPoint {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
	//
	// In particular it performs the calculations using the following:
	// Z1Z1 = Z1^2, Z2Z2 = Z2^2, U1 = X1*Z2Z2, U2 = X2*Z1Z1, S1 = Y1*Z2*Z2Z2
	// S2 = Y2*Z1*Z1Z1, H = U2-U1, I = (2*H)^2, J = H*I, r = 2*(S2-S1)
	// V = U1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*S1*J, Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	//
	// This results in a cost of 11 field multiplications, 5 field squarings,
	// 9 field additions, and 4 integer multiplications.
	h := t.u2.Sub(t.u1)                      // H = U2-U1
	i := h.MulInt(2).Square()                // I = (2*H)^2
	j := h.Mul(i)                            // J = H*I
	r := t.s2.Sub(t.s1).MulInt(2)            // r = 2*(S2-S1)
	v := t.u1.Mul(i)                         // V = U1*I
	x3 := r.Square().Sub(j).Sub(v.MulInt(2)) // X3 = r^2-J-2*V

	// Y3 = r*(V-X3)-2*S1*J
	y3 := r.Mul(v.Sub(x3)).Sub(t.s1.Mul(j).MulInt(2))

	// Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	z3 := t.p.z.Add(t.q.z).Square().Sub(t.z1z1).Sub(t.z2z2).Mul(h)
	return JacobianPoint{x: x3, y: y3, z: z3}
}

// Add returns p+q.
//
// The applicable case of the addition law is resolved before any point
// arithmetic is done, which means this runs in *non-constant* time with
// respect to the points.  Scalar multiplication uses addConst instead.
func (p JacobianPoint) Add(q JacobianPoint) JacobianPoint {
	t := newJacobianAddTerms(p, q)
	switch t.classify() {
	case jacobianAddLeftIdentity:
		return q
	case jacobianAddRightIdentity:
		return p
	case jacobianAddDouble:
		return p.Double()
	case jacobianAddInverse:
		return InfinityJacobian()
	}
	return t.sum()
}

// addConst returns p+q in constant time.  The generic sum and the doubling of p
// are both always computed and the result for the applicable case of the
// addition law is chosen with masks rather than branches.
func (p JacobianPoint) addConst(q JacobianPoint) JacobianPoint {
	t := newJacobianAddTerms(p, q)
	sum := t.sum()
	dbl := p.Double()

	pInf := p.z.isZeroBit()
	qInf := q.z.isZeroBit()
	sameX := t.u1.equalsBit(t.u2)
	sameY := t.s1.equalsBit(t.s2)

	// Later selections take precedence over earlier ones.
	result := sum
	result = selectJacobian(sameX&sameY, dbl, result)
	result = selectJacobian(sameX&(sameY^1), InfinityJacobian(), result)
	result = selectJacobian(qInf, p, result)
	result = selectJacobian(pInf, q, result)
	return result
}

// selectJacobian returns a when bit is 1 and b when bit is 0 in constant time.
func selectJacobian(bit uint64, a, b JacobianPoint) JacobianPoint {
	mask := -bit
	return JacobianPoint{
		x: selectFieldVal(mask, a.x, b.x),
		y: selectFieldVal(mask, a.y, b.y),
		z: selectFieldVal(mask, a.z, b.z),
	}
}
