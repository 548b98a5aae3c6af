// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/ModChain/secp256k1/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// deriveCmd returns the command that derives public keys from private
// scalars.
func (a *app) deriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <scalar>...",
		Short: "Derive compressed public keys from hex private scalars",
		Long: "Derive the public key k*G for every hex-encoded private scalar " +
			"k and print one compressed point per line, in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scalars := make([]secp256k1.Scalar, 0, len(args))
			for _, arg := range args {
				k, err := parseScalar(arg)
				if err != nil {
					return err
				}
				scalars = append(scalars, k)
			}

			workers := a.config.GetInt(workersFlag)
			a.logger.Debugw("deriving public keys", "count", len(scalars),
				"workers", workers)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pubs, err := secp256k1.DerivePublicKeys(ctx, scalars,
				secp256k1.Generator(), workers)
			if err != nil {
				return errors.Wrap(err, "derivation failed")
			}

			out := cmd.OutOrStdout()
			for _, pub := range pubs {
				b, err := pub.SerializeCompressed()
				if err != nil {
					return errors.Wrap(err, "failed to serialize public key")
				}
				fmt.Fprintln(out, hex.EncodeToString(b))
			}
			return nil
		},
	}
}

// parseCmd returns the command that validates a compressed point and prints
// its affine coordinates.
func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <point>",
		Short: "Validate a hex compressed point and print its coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			a.logger.Debugw("parsed point", "x", p.X(), "y", p.Y())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "x: %v\n", p.X())
			fmt.Fprintf(out, "y: %v\n", p.Y())
			return nil
		},
	}
}

// addCmd returns the command that adds two compressed points.
func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <point> <point>",
		Short: "Add two hex compressed points",
		Long: "Add two hex-encoded compressed points and print the compressed " +
			"sum, or \"infinity\" when the points are inverses.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[1])
			if err != nil {
				return err
			}

			sum := p.AsJacobian().Add(q.AsJacobian()).ToAffine()
			out := cmd.OutOrStdout()
			if sum.IsInfinity() {
				a.logger.Infow("sum is the point at infinity")
				fmt.Fprintln(out, "infinity")
				return nil
			}
			b, err := sum.SerializeCompressed()
			if err != nil {
				return errors.Wrap(err, "failed to serialize sum")
			}
			fmt.Fprintln(out, hex.EncodeToString(b))
			return nil
		},
	}
}

// ecdhCmd returns the command that computes an ECDH shared secret.
func (a *app) ecdhCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecdh <private-scalar> <public-point>",
		Short: "Compute the ECDH shared secret of a private key and public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			priv, err := secp256k1.NewPrivateKey(k)
			if err != nil {
				return errors.Wrap(err, "invalid private key")
			}
			point, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			pub, err := secp256k1.NewPublicKey(point)
			if err != nil {
				return errors.Wrap(err, "invalid public key")
			}

			secret, err := priv.ECDH(pub)
			if err != nil {
				return errors.Wrap(err, "ecdh failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(secret))
			return nil
		},
	}
}
