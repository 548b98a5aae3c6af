// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ModChain/secp256k1/v2"
	"github.com/stretchr/testify/require"
)

const (
	generatorCompressed    = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	negGeneratorCompressed = "0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	twoGCompressed         = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	threeGCompressed       = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
)

// run executes the root command with the passed arguments and returns its
// standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDerive(t *testing.T) {
	out, err := run(t, "derive", "01", "0x02", "03")
	require.NoError(t, err)
	require.Equal(t, []string{generatorCompressed, twoGCompressed,
		threeGCompressed}, strings.Fields(out))

	out, err = run(t, "--workers", "1", "derive", "01")
	require.NoError(t, err)
	require.Equal(t, generatorCompressed+"\n", out)

	_, err = run(t, "derive", "01", "00")
	require.Error(t, err)
	require.True(t, errors.Is(err, secp256k1.ErrDegenerateScalar), "got %v",
		err)

	_, err = run(t, "derive", "zz")
	require.Error(t, err)

	_, err = run(t, "derive")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", generatorCompressed)
	require.NoError(t, err)
	require.Equal(t, "x: 79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798\n"+
		"y: 483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8\n",
		out)

	_, err = run(t, "parse", "04"+generatorCompressed[2:])
	require.True(t, errors.Is(err, secp256k1.ErrInvalidEncoding), "got %v",
		err)
}

func TestAdd(t *testing.T) {
	out, err := run(t, "add", generatorCompressed, twoGCompressed)
	require.NoError(t, err)
	require.Equal(t, threeGCompressed+"\n", out)

	out, err = run(t, "add", generatorCompressed, generatorCompressed)
	require.NoError(t, err)
	require.Equal(t, twoGCompressed+"\n", out)

	out, err = run(t, "add", generatorCompressed, negGeneratorCompressed)
	require.NoError(t, err)
	require.Equal(t, "infinity\n", out)
}

func TestECDH(t *testing.T) {
	// 2*(3G) and 3*(2G) are both 6G.
	out1, err := run(t, "ecdh", "02", threeGCompressed)
	require.NoError(t, err)
	out2, err := run(t, "ecdh", "03", twoGCompressed)
	require.NoError(t, err)
	require.Equal(t, out1, out2)
	require.Len(t, strings.TrimSpace(out1), 64)

	_, err = run(t, "ecdh", "00", twoGCompressed)
	require.True(t, errors.Is(err, secp256k1.ErrDegenerateScalar), "got %v",
		err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "derive", "01")
	require.Error(t, err)
}
