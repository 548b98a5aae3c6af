// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"math/big"
	mrand "math/rand"
	"testing"
	"time"
)

// randPrivKey returns a random private key generated by the passed rng.
func randPrivKey(t *testing.T, rng *mrand.Rand) *PrivateKey {
	t.Helper()
	for {
		priv, err := NewPrivateKey(randScalar(t, rng))
		if err == nil {
			return priv
		}
	}
}

func TestGenerateSharedSecret(t *testing.T) {
	seed := time.Now().Unix()
	rng := mrand.New(mrand.NewSource(seed))
	defer func(t *testing.T, seed int64) {
		if t.Failed() {
			t.Logf("random seed: %d", seed)
		}
	}(t, seed)

	for i := 0; i < 5; i++ {
		privKey1 := randPrivKey(t, rng)
		privKey2 := randPrivKey(t, rng)

		secret1 := GenerateSharedSecret(privKey1, privKey2.PubKey())
		secret2 := GenerateSharedSecret(privKey2, privKey1.PubKey())
		if !bytes.Equal(secret1, secret2) {
			t.Fatalf("ECDH mismatch: %x != %x", secret1, secret2)
		}

		// The shared secret is the x coordinate of (k1*k2)*G.
		k := new(big.Int).Mul(scalarToBig(privKey1.Key()),
			scalarToBig(privKey2.Key()))
		want := ScalarBaseMult(bigToScalar(k)).ToAffine().X().Bytes()
		if !bytes.Equal(secret1, want[:]) {
			t.Fatalf("wrong shared secret -- got %x, want %x", secret1, want)
		}

		secret3, err := privKey1.ECDH(privKey2.PubKey())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(secret1, secret3) {
			t.Fatalf("ECDH alias mismatch: %x != %x", secret1, secret3)
		}
	}
}
