// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/ModChain/secp256k1/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "K1POINT"

	logLevelFlag = "log-level"
	workersFlag  = "workers"
)

// app holds the state shared by all subcommands.
type app struct {
	config *viper.Viper
	logger *zap.SugaredLogger
}

// newRootCmd returns the k1point command along with all of its subcommands.
// Flags may also be provided through K1POINT_ prefixed environment variables,
// such as K1POINT_LOG_LEVEL.
func newRootCmd() *cobra.Command {
	a := &app{config: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "k1point",
		Short:         "secp256k1 point arithmetic from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(logLevelFlag, "warn", "log level (debug, info, warn, error)")
	flags.Int(workersFlag, 0, "maximum concurrent derivations, 0 for no limit")

	rootCmd.AddCommand(
		a.deriveCmd(),
		a.parseCmd(),
		a.addCmd(),
		a.ecdhCmd(),
	)
	return rootCmd
}

// init binds the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.config.SetEnvPrefix(envPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()
	if err := a.config.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	logger, err := newLogger(a.config.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	a.logger = logger.Sugar().Named("k1point")
	return nil
}

// newLogger builds a console logger writing to stderr at the provided level.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// decodeHex decodes a hex argument, tolerating a 0x prefix.
func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex for %s", what)
	}
	return b, nil
}

// parsePoint decodes a hex-encoded compressed point.
func parsePoint(s string) (secp256k1.AffinePoint, error) {
	b, err := decodeHex("point", s)
	if err != nil {
		return secp256k1.AffinePoint{}, err
	}
	p, err := secp256k1.ParseCompressed(b)
	if err != nil {
		return secp256k1.AffinePoint{}, errors.Wrapf(err, "point %s", s)
	}
	return p, nil
}

// parseScalar decodes a hex-encoded big-endian scalar.
func parseScalar(s string) (secp256k1.Scalar, error) {
	b, err := decodeHex("scalar", s)
	if err != nil {
		return secp256k1.Scalar{}, err
	}
	k, err := secp256k1.ScalarFromByteSlice(b)
	if err != nil {
		return secp256k1.Scalar{}, errors.Wrap(err, "invalid scalar")
	}
	return k, nil
}
