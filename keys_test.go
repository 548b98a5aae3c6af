// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// TestPrivKeys ensures that private keys are parsed, validated, and produce
// the expected public keys.
func TestPrivKeys(t *testing.T) {
	tests := []struct {
		name string // test description
		priv string // hex encoded private key to test
		pub  string // expected hex encoded compressed public key
		err  error  // expected error
	}{{
		name: "random private key",
		priv: "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725",
		pub:  "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
	}, {
		name: "short private key is padded",
		priv: "01",
		pub:  "02" + generatorHexX,
	}, {
		name: "group order - 1",
		priv: "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		pub:  "03" + generatorHexX,
	}, {
		name: "zero",
		priv: "0000000000000000000000000000000000000000000000000000000000000000",
		err:  ErrDegenerateScalar,
	}, {
		name: "group order",
		priv: orderHex,
		err:  ErrDegenerateScalar,
	}, {
		name: "too long",
		priv: "01" + orderHex,
		err:  ErrScalarTooLong,
	}}

	for _, test := range tests {
		privBytes, err := hex.DecodeString(test.priv)
		if err != nil {
			t.Errorf("%s: invalid test data: %v", test.name, err)
			continue
		}
		priv, err := PrivKeyFromBytes(privBytes)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			continue
		}

		wantPub, _ := hex.DecodeString(test.pub)
		pub := priv.PubKey()
		if got := pub.SerializeCompressed(); !bytes.Equal(got, wantPub) {
			t.Errorf("%s: mismatched public key -- got %x, want %x", test.name,
				got, wantPub)
			continue
		}

		// Ensure the private key serializes to 32 bytes and parses back to
		// the same key.
		serialized := priv.Serialize()
		if len(serialized) != PrivKeyBytesLen {
			t.Errorf("%s: unexpected serialized length %d", test.name,
				len(serialized))
			continue
		}
		priv2, err := PrivKeyFromBytes(serialized)
		if err != nil {
			t.Errorf("%s: unexpected error reparsing: %v", test.name, err)
			continue
		}
		if !priv2.Key().Equals(priv.Key()) {
			t.Errorf("%s: mismatched reparsed key", test.name)
			continue
		}

		// Ensure the public key parses back to an equal key.
		pub2, err := ParsePubKey(pub.SerializeCompressed())
		if err != nil {
			t.Errorf("%s: unexpected error parsing public key: %v", test.name,
				err)
			continue
		}
		if !pub2.IsEqual(pub) {
			t.Errorf("%s: mismatched parsed public key", test.name)
			continue
		}
	}
}

// TestNewPublicKey ensures public keys can only hold finite points.
func TestNewPublicKey(t *testing.T) {
	pub, err := NewPublicKey(Generator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pub.Point().Equals(Generator()) {
		t.Fatal("public key does not hold the provided point")
	}
	if !pub.AsJacobian().EqualsAffine(Generator()) {
		t.Fatal("Jacobian public key does not match the provided point")
	}

	_, err = NewPublicKey(InfinityPoint())
	if !errors.Is(err, ErrPointAtInfinity) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrPointAtInfinity)
	}

	_, err = ParsePubKey([]byte{PubKeyFormatCompressedEven})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrInvalidEncoding)
	}
}

// TestNewKeyPair ensures key pairs couple a private key with its derived
// public key.
func TestNewKeyPair(t *testing.T) {
	pair, err := NewKeyPair(NewScalar(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pair.PrivateKey.Key().Equals(NewScalar(2)) {
		t.Fatal("key pair does not hold the provided scalar")
	}
	if !pair.PublicKey.Point().Equals(affineFromHex(twoGX, twoGY)) {
		t.Fatal("key pair public key is not 2G")
	}

	_, err = NewKeyPair(Scalar{})
	if !errors.Is(err, ErrDegenerateScalar) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrDegenerateScalar)
	}
	_, err = NewKeyPair(CurveOrder())
	if !errors.Is(err, ErrDegenerateScalar) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrDegenerateScalar)
	}
}
