// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements constant time secp256k1 elliptic curve arithmetic
in pure Go.

This package provides the numeric engine needed to perform elliptic curve
cryptography over the secp256k1 curve: arithmetic in the underlying prime
field, points in affine and Jacobian projective coordinates along with the
conversions between them, and derivation of public keys from private scalars.
See https://www.secg.org/sec2-v2.pdf for details on the standard.

An overview of the features provided by this package are as follows:

  - FieldVal type for working modulo the secp256k1 field prime
  - Scalar type holding 256-bit multipliers such as private keys
  - AffinePoint type with the affine addition law and on-curve validation
  - Point serialization and parsing in the 33-byte compressed format
  - JacobianPoint type for inversion-free point addition and doubling
  - Scalar multiplication with an arbitrary point
  - Scalar multiplication with the base point (group generator)
  - Public key derivation, including concurrent batch derivation
  - Private and public key types
  - Elliptic curve Diffie-Hellman shared secrets

All types are immutable values: every operation reads its inputs and returns a
new value, so they may be shared freely between goroutines.

Field arithmetic and scalar multiplication run in constant time with respect to
the values involved since they handle secret data.  The Add methods of
AffinePoint and JacobianPoint branch on the special cases of the group law and
are meant for public data.

# Errors

Errors returned by this package are of type secp256k1.Error and identify their
cause with an ErrorKind, which supports errors.Is and errors.As:

	pub, err := secp256k1.ParsePubKey(serialized)
	if errors.Is(err, secp256k1.ErrInvalidEncoding) {
		// Reject the key.
	}
*/
package secp256k1
