// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DerivePublicKeys derives the public key k*base for every provided scalar
// concurrently and returns them in the same order as the scalars.
//
// At most limit derivations run at once; a limit of zero or less means no
// limit.  The first failure cancels the derivations that have not started yet
// and is returned, wrapped with the index of the offending scalar, so
// errors.Is still identifies its ErrorKind.
func DerivePublicKeys(ctx context.Context, scalars []Scalar, base AffinePoint,
	limit int) ([]AffinePoint, error) {

	results := make([]AffinePoint, len(scalars))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range scalars {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pub, err := DerivePublicKey(scalars[i], base)
			if err != nil {
				return fmt.Errorf("scalar %d: %w", i, err)
			}
			results[i] = pub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
