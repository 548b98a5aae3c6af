// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [HAC]: Handbook of Applied Cryptography Menezes, van Oorschot, Vanstone.
//     http://cacr.uwaterloo.ca/hac/

// All elliptic curve operations for secp256k1 are done in a finite field
// characterized by a 256-bit prime.  This file implements specialized
// fixed-precision field arithmetic rather than relying on an
// arbitrary-precision arithmetic package such as math/big since the size is
// known and, more importantly, because math/big does not run in constant time.
//
// Each field element is represented by four 64-bit words in little-endian
// order (the word at index 0 is the least significant) and is always kept
// fully reduced modulo the prime, so two field values are equal if and only if
// their words are equal.
//
// The prime has the special form p = 2^256 - c where c = 2^32 + 977, which
// means 2^256 ≡ c (mod p).  Reduction of a 512-bit product therefore only
// needs to multiply the upper half by the small constant c and fold it back
// into the lower half, twice, followed by at most one conditional subtraction
// of the prime.
//
// Every operation in this file runs in constant time with respect to the
// values involved.  Carries are propagated with the math/bits primitives, and
// all conditional reductions are performed by selecting between candidates
// with masks rather than by branching.

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// fieldPrimeComplement is 2^256 - p = 2^32 + 977.
const fieldPrimeComplement = 0x1000003d1

var (
	// fieldPrime is the secp256k1 field prime
	// p = 2^256 - 2^32 - 977 in little-endian words.
	fieldPrime = [4]uint64{
		0xfffffffefffffc2f, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff,
	}

	// fieldPrimeMinusTwo is the exponent p-2 used to compute multiplicative
	// inverses via Fermat's little theorem.
	fieldPrimeMinusTwo = [4]uint64{
		0xfffffffefffffc2d, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff,
	}

	// fieldSqrtExponent is the exponent (p+1)/4 used to compute square roots,
	// which is valid since p ≡ 3 (mod 4).
	fieldSqrtExponent = [4]uint64{
		0xffffffffbfffff0c, 0xffffffffffffffff,
		0xffffffffffffffff, 0x3fffffffffffffff,
	}

	fieldOne = FieldVal{n: [4]uint64{1, 0, 0, 0}}
)

// FieldVal implements optimized fixed-precision arithmetic over the secp256k1
// finite field.  It is an immutable value type: all methods operate on copies
// and return new values, so FieldVals may be freely shared between goroutines.
//
// The zero value is the field element 0.
type FieldVal struct {
	n [4]uint64
}

// NewFieldVal returns the field value that represents the provided unsigned
// integer.
func NewFieldVal(v uint64) FieldVal {
	// Every 64-bit integer is already less than the prime.
	return FieldVal{n: [4]uint64{v, 0, 0, 0}}
}

// FieldValFromBytes interprets the provided array as a 256-bit big-endian
// unsigned integer, reduces it modulo the field prime, and returns the
// resulting field value.
//
// The overflow flag reports whether the provided integer was greater than or
// equal to the field prime, which callers that require canonical encodings
// treat as a failure.
func FieldValFromBytes(b *[32]byte) (FieldVal, bool) {
	var t [4]uint64
	t[3] = binary.BigEndian.Uint64(b[0:8])
	t[2] = binary.BigEndian.Uint64(b[8:16])
	t[1] = binary.BigEndian.Uint64(b[16:24])
	t[0] = binary.BigEndian.Uint64(b[24:32])

	// Any 256-bit integer is less than 2p, so a single conditional
	// subtraction fully reduces it.
	s, borrow := sub256(&t, &fieldPrime)
	overflow := borrow ^ 1
	return FieldVal{n: selectWords(-overflow, &s, &t)}, overflow == 1
}

// hexToFieldVal converts the passed hex string into a FieldVal and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToFieldVal(s string) FieldVal {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	if len(b) > 32 {
		panic("hex in source file too long: " + s)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	f, overflow := FieldValFromBytes(&buf)
	if overflow {
		panic("hex in source file overflows the field prime: " + s)
	}
	return f
}

// Bytes returns the field value as a 32-byte big-endian array.
func (f FieldVal) Bytes() [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint64(b[0:8], f.n[3])
	binary.BigEndian.PutUint64(b[8:16], f.n[2])
	binary.BigEndian.PutUint64(b[16:24], f.n[1])
	binary.BigEndian.PutUint64(b[24:32], f.n[0])
	return b
}

// String returns the field value as a 64-character hex string.
func (f FieldVal) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}

// isZeroBit returns 1 when the field value is zero and 0 otherwise in constant
// time.
func (f FieldVal) isZeroBit() uint64 {
	v := f.n[0] | f.n[1] | f.n[2] | f.n[3]
	return ((v | -v) >> 63) ^ 1
}

// IsZero returns whether or not the field value is equal to zero in constant
// time.
func (f FieldVal) IsZero() bool {
	return f.isZeroBit() == 1
}

// IsOne returns whether or not the field value is equal to one in constant
// time.
func (f FieldVal) IsOne() bool {
	return f.equalsBit(fieldOne) == 1
}

// IsOdd returns whether or not the field value is an odd number in constant
// time.
func (f FieldVal) IsOdd() bool {
	return f.n[0]&1 == 1
}

// equalsBit returns 1 when the two field values are equal and 0 otherwise in
// constant time.
func (f FieldVal) equalsBit(val FieldVal) uint64 {
	v := (f.n[0] ^ val.n[0]) | (f.n[1] ^ val.n[1]) |
		(f.n[2] ^ val.n[2]) | (f.n[3] ^ val.n[3])
	return ((v | -v) >> 63) ^ 1
}

// Equals returns whether or not the two field values are the same in constant
// time.
func (f FieldVal) Equals(val FieldVal) bool {
	return f.equalsBit(val) == 1
}

// Add returns f+val (mod p).
func (f FieldVal) Add(val FieldVal) FieldVal {
	var t [4]uint64
	var carry uint64
	t[0], carry = bits.Add64(f.n[0], val.n[0], 0)
	t[1], carry = bits.Add64(f.n[1], val.n[1], carry)
	t[2], carry = bits.Add64(f.n[2], val.n[2], carry)
	t[3], carry = bits.Add64(f.n[3], val.n[3], carry)
	return reduceOnce(&t, carry)
}

// AddInt returns f+ui (mod p).
func (f FieldVal) AddInt(ui uint64) FieldVal {
	return f.Add(NewFieldVal(ui))
}

// Sub returns f-val (mod p), wrapping into [0, p) when val is greater than f.
func (f FieldVal) Sub(val FieldVal) FieldVal {
	t, borrow := sub256(&f.n, &val.n)

	// Add the prime back when the subtraction borrowed.
	mask := -borrow
	var carry uint64
	t[0], carry = bits.Add64(t[0], fieldPrime[0]&mask, 0)
	t[1], carry = bits.Add64(t[1], fieldPrime[1]&mask, carry)
	t[2], carry = bits.Add64(t[2], fieldPrime[2]&mask, carry)
	t[3], _ = bits.Add64(t[3], fieldPrime[3]&mask, carry)
	return FieldVal{n: t}
}

// Negate returns -f (mod p).  The negation of zero is zero.
func (f FieldVal) Negate() FieldVal {
	return FieldVal{}.Sub(f)
}

// Mul returns f*val (mod p).
func (f FieldVal) Mul(val FieldVal) FieldVal {
	var r [8]uint64
	mul256(&r, &f.n, &val.n)
	return reduce512(&r)
}

// MulInt returns f*ui (mod p).
func (f FieldVal) MulInt(ui uint64) FieldVal {
	return f.Mul(NewFieldVal(ui))
}

// Square returns f^2 (mod p).
func (f FieldVal) Square() FieldVal {
	return f.Mul(f)
}

// pow returns f^e (mod p).  The exponent must be public since the loop
// branches on its bits, however the time taken is independent of f.
func (f FieldVal) pow(e *[4]uint64) FieldVal {
	result := fieldOne
	for i := 3; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			result = result.Square()
			if (e[i]>>uint(j))&1 == 1 {
				result = result.Mul(f)
			}
		}
	}
	return result
}

// inverse returns f^(p-2) (mod p), which is the multiplicative inverse of f
// for all nonzero f.  It returns zero when f is zero, so callers must rule that
// case out beforehand.
func (f FieldVal) inverse() FieldVal {
	return f.pow(&fieldPrimeMinusTwo)
}

// Inverse returns the multiplicative inverse of f such that f*f^-1 ≡ 1
// (mod p).  Zero has no inverse, in which case ErrUndefinedInverse is returned.
func (f FieldVal) Inverse() (FieldVal, error) {
	if f.IsZero() {
		return FieldVal{}, makeError(ErrUndefinedInverse,
			"the field element zero has no multiplicative inverse")
	}
	return f.inverse(), nil
}

// Div returns f/val (mod p), that is f multiplied by the inverse of val.  It
// returns ErrUndefinedInverse when val is zero.
func (f FieldVal) Div(val FieldVal) (FieldVal, error) {
	inv, err := val.Inverse()
	if err != nil {
		return FieldVal{}, err
	}
	return f.Mul(inv), nil
}

// SquareRoot returns a square root of f and whether or not f is a quadratic
// residue.  When it is not, the returned value is meaningless.
//
// Both f and its negation share the two square roots r and p-r, and the one
// returned is unspecified, so callers that care about the parity of the root
// must adjust it themselves.
func (f FieldVal) SquareRoot() (FieldVal, bool) {
	// Since p ≡ 3 (mod 4), a square root of a quadratic residue a is
	// a^((p+1)/4).  The candidate is squared to determine whether a is in
	// fact a residue, per [HAC] section 3.36.
	root := f.pow(&fieldSqrtExponent)
	return root, root.Square().Equals(f)
}

// selectFieldVal returns a when mask is all ones and b when mask is zero.
func selectFieldVal(mask uint64, a, b FieldVal) FieldVal {
	return FieldVal{n: selectWords(mask, &a.n, &b.n)}
}

// selectWords returns a when mask is all ones and b when mask is zero.
func selectWords(mask uint64, a, b *[4]uint64) [4]uint64 {
	return [4]uint64{
		(a[0] & mask) | (b[0] &^ mask),
		(a[1] & mask) | (b[1] &^ mask),
		(a[2] & mask) | (b[2] &^ mask),
		(a[3] & mask) | (b[3] &^ mask),
	}
}

// sub256 returns a-b along with the final borrow.
func sub256(a, b *[4]uint64) ([4]uint64, uint64) {
	var t [4]uint64
	var borrow uint64
	t[0], borrow = bits.Sub64(a[0], b[0], 0)
	t[1], borrow = bits.Sub64(a[1], b[1], borrow)
	t[2], borrow = bits.Sub64(a[2], b[2], borrow)
	t[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return t, borrow
}

// reduceOnce returns carry*2^256 + t (mod p) for values that are less than 2p.
func reduceOnce(t *[4]uint64, carry uint64) FieldVal {
	s, borrow := sub256(t, &fieldPrime)

	// The value is at least p when the addition that produced it carried out
	// of 256 bits or when subtracting p did not borrow.
	mask := -(carry | (borrow ^ 1))
	return FieldVal{n: selectWords(mask, &s, t)}
}

// mul256 stores the full 512-bit product a*b in r.
func mul256(r *[8]uint64, a, b *[4]uint64) {
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			// The maximum value is (2^64-1)^2 + 2(2^64-1) = 2^128-1, so the
			// high word never overflows.
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
		r[i+4] = carry
	}
}

// reduce512 reduces the 512-bit value r modulo the field prime.
func reduce512(r *[8]uint64) FieldVal {
	const c = fieldPrimeComplement

	// Fold the upper 256 bits into the lower 256 bits using 2^256 ≡ c.  The
	// upper product is at most 256+33 bits, so the result spills into a small
	// fifth word.
	var t [4]uint64
	var carry, acc, cc uint64
	hi, lo := bits.Mul64(r[4], c)
	t[0], carry = bits.Add64(r[0], lo, 0)
	acc = hi

	hi, lo = bits.Mul64(r[5], c)
	lo, cc = bits.Add64(lo, acc, 0)
	hi += cc
	t[1], carry = bits.Add64(r[1], lo, carry)
	acc = hi

	hi, lo = bits.Mul64(r[6], c)
	lo, cc = bits.Add64(lo, acc, 0)
	hi += cc
	t[2], carry = bits.Add64(r[2], lo, carry)
	acc = hi

	hi, lo = bits.Mul64(r[7], c)
	lo, cc = bits.Add64(lo, acc, 0)
	hi += cc
	t[3], carry = bits.Add64(r[3], lo, carry)
	t4 := hi + carry

	// Fold the fifth word, which is less than 2^34, the same way.
	hi, lo = bits.Mul64(t4, c)
	t[0], carry = bits.Add64(t[0], lo, 0)
	t[1], carry = bits.Add64(t[1], hi, carry)
	t[2], carry = bits.Add64(t[2], 0, carry)
	t[3], carry = bits.Add64(t[3], 0, carry)

	// A final carry out of 256 bits is worth c once more.  The remaining
	// words are tiny whenever that happens, so this addition cannot carry
	// out again.
	t[0], cc = bits.Add64(t[0], c&-carry, 0)
	t[1], cc = bits.Add64(t[1], 0, cc)
	t[2], cc = bits.Add64(t[2], 0, cc)
	t[3], _ = bits.Add64(t[3], 0, cc)

	return reduceOnce(&t, 0)
}
