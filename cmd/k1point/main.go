// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command k1point derives, parses, and combines secp256k1 points from the
// command line.  Points are read and written in the hex-encoded 33-byte
// compressed format and scalars as hex-encoded big-endian integers.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "k1point: %v\n", err)
		os.Exit(1)
	}
}
