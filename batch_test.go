// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDerivePublicKeys ensures batch derivation returns the public keys in the
// order of the scalars regardless of the concurrency limit.
func TestDerivePublicKeys(t *testing.T) {
	scalars := make([]Scalar, 8)
	for i := range scalars {
		scalars[i] = NewScalar(uint64(i + 1))
	}

	for _, limit := range []int{0, 1, 3, 16} {
		pubs, err := DerivePublicKeys(context.Background(), scalars,
			Generator(), limit)
		require.NoError(t, err, "limit %d", limit)
		require.Len(t, pubs, len(scalars), "limit %d", limit)
		for i, pub := range pubs {
			want := ScalarBaseMult(scalars[i]).ToAffine()
			require.True(t, pub.Equals(want), "limit %d index %d", limit, i)
		}
	}
}

// TestDerivePublicKeysErrors ensures batch derivation reports the failing
// scalar and honors cancellation.
func TestDerivePublicKeysErrors(t *testing.T) {
	scalars := []Scalar{NewScalar(1), {}, NewScalar(2)}
	_, err := DerivePublicKeys(context.Background(), scalars, Generator(), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDegenerateScalar), "got %v", err)
	require.Contains(t, err.Error(), "scalar 1")

	_, err = DerivePublicKeys(context.Background(), scalars[:1],
		InfinityPoint(), 0)
	require.True(t, errors.Is(err, ErrPointAtInfinity), "got %v", err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DerivePublicKeys(ctx, []Scalar{NewScalar(1), NewScalar(2)},
		Generator(), 1)
	require.ErrorIs(t, err, context.Canceled)

	pubs, err := DerivePublicKeys(context.Background(), nil, Generator(), 0)
	require.NoError(t, err)
	require.Empty(t, pubs)
}
