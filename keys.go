// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package.  The key is always a scalar k with 0 < k < n.
type PrivateKey struct {
	key Scalar
}

// NewPrivateKey instantiates a new private key from a scalar.
// ErrDegenerateScalar is returned when the scalar is zero or not less than the
// group order.
func NewPrivateKey(key Scalar) (*PrivateKey, error) {
	if key.IsZero() {
		return nil, makeError(ErrDegenerateScalar, "private key is zero")
	}
	if key.Overflows() {
		return nil, makeError(ErrDegenerateScalar, "private key is not less "+
			"than the group order")
	}
	return &PrivateKey{key: key}, nil
}

// PrivKeyFromBytes returns a private key for the provided big-endian bytes,
// which may be at most 32 bytes long.  It fails under the same conditions as
// NewPrivateKey.
//
// Generating the bytes and keeping them secret is the caller's responsibility.
func PrivKeyFromBytes(privKeyBytes []byte) (*PrivateKey, error) {
	key, err := ScalarFromByteSlice(privKeyBytes)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(key)
}

// Key returns the scalar of the private key.
func (p *PrivateKey) Key() Scalar {
	return p.key
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	// The key is in [1, n) and the base point has prime order n, so the
	// product is never the point at infinity.
	point := ScalarBaseMult(p.key).ToAffine()
	return &PublicKey{point: point}
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	b := p.key.Bytes()
	return b[:]
}

// PublicKey provides facilities for efficiently working with secp256k1 public
// keys within this package.  A public key is always a finite point on the
// curve.
type PublicKey struct {
	point AffinePoint
}

// NewPublicKey instantiates a new public key from an affine point.
// ErrPointAtInfinity is returned for the point at infinity.
func NewPublicKey(point AffinePoint) (*PublicKey, error) {
	if point.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity, "public key is the point "+
			"at infinity")
	}
	return &PublicKey{point: point}, nil
}

// ParsePubKey parses a secp256k1 public key encoded in the 33-byte compressed
// format.  See ParseCompressed for the possible errors.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	point, err := ParseCompressed(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// Point returns the affine point of the public key.
func (p *PublicKey) Point() AffinePoint {
	return p.point
}

// AsJacobian returns the public key lifted into Jacobian coordinates.
func (p *PublicKey) AsJacobian() JacobianPoint {
	return p.point.AsJacobian()
}

// SerializeCompressed serializes a public key in the 33-byte compressed format.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.point.serializeCompressed()
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.point.Equals(otherPubKey.point)
}

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	PrivateKey *PrivateKey
	PublicKey  *PublicKey
}

// NewKeyPair derives the key pair for the provided private scalar.  It fails
// under the same conditions as NewPrivateKey.
func NewKeyPair(key Scalar) (*KeyPair, error) {
	priv, err := NewPrivateKey(key)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PrivateKey: priv, PublicKey: priv.PubKey()}, nil
}
