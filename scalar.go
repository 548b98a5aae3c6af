// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Scalar is a 256-bit unsigned integer used to multiply curve points, such as
// a private key.
//
// Unlike FieldVal, a Scalar is not reduced on construction: it holds exactly
// the integer it was created from so that multiples such as n*G, where n is
// the group order, can be computed literally.  Callers that need the canonical
// representative modulo the group order use Reduce, and Overflows reports
// whether the integer lies outside [0, n).
//
// The zero value is the scalar 0.
type Scalar struct {
	n [4]uint64
}

// NewScalar returns the scalar that represents the provided unsigned integer.
func NewScalar(v uint64) Scalar {
	return Scalar{n: [4]uint64{v, 0, 0, 0}}
}

// ScalarFromBytes interprets the provided array as a 256-bit big-endian
// unsigned integer and returns it as a Scalar.
func ScalarFromBytes(b *[32]byte) Scalar {
	var s Scalar
	s.n[3] = binary.BigEndian.Uint64(b[0:8])
	s.n[2] = binary.BigEndian.Uint64(b[8:16])
	s.n[1] = binary.BigEndian.Uint64(b[16:24])
	s.n[0] = binary.BigEndian.Uint64(b[24:32])
	return s
}

// ScalarFromByteSlice interprets the provided slice as a big-endian unsigned
// integer of at most 32 bytes and returns it as a Scalar.  Shorter slices are
// treated as if they were padded with leading zeros.
func ScalarFromByteSlice(b []byte) (Scalar, error) {
	if len(b) > 32 {
		str := fmt.Sprintf("malformed scalar: %d bytes exceeds the maximum "+
			"of 32", len(b))
		return Scalar{}, makeError(ErrScalarTooLong, str)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return ScalarFromBytes(&buf), nil
}

// hexToScalar converts the passed hex string into a Scalar and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToScalar(s string) Scalar {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	scalar, err := ScalarFromByteSlice(b)
	if err != nil {
		panic("hex in source file too long: " + s)
	}
	return scalar
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s Scalar) Bytes() [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint64(b[0:8], s.n[3])
	binary.BigEndian.PutUint64(b[8:16], s.n[2])
	binary.BigEndian.PutUint64(b[16:24], s.n[1])
	binary.BigEndian.PutUint64(b[24:32], s.n[0])
	return b
}

// String returns the scalar as a 64-character hex string.
func (s Scalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// IsZero returns whether or not the scalar is equal to zero in constant time.
func (s Scalar) IsZero() bool {
	v := s.n[0] | s.n[1] | s.n[2] | s.n[3]
	return v == 0
}

// Equals returns whether or not the two scalars are the same in constant time.
func (s Scalar) Equals(val Scalar) bool {
	v := (s.n[0] ^ val.n[0]) | (s.n[1] ^ val.n[1]) |
		(s.n[2] ^ val.n[2]) | (s.n[3] ^ val.n[3])
	return v == 0
}

// overflowBit returns 1 when the scalar is greater than or equal to the group
// order and 0 otherwise in constant time.
func (s Scalar) overflowBit() uint64 {
	_, borrow := sub256(&s.n, &curveOrder.n)
	return borrow ^ 1
}

// Overflows returns whether or not the scalar is greater than or equal to the
// group order in constant time.
func (s Scalar) Overflows() bool {
	return s.overflowBit() == 1
}

// Reduce returns the scalar reduced modulo the group order.
func (s Scalar) Reduce() Scalar {
	// Any 256-bit integer is less than 2n, so a single conditional
	// subtraction fully reduces it.
	t, _ := sub256(&s.n, &curveOrder.n)
	return Scalar{n: selectWords(-s.overflowBit(), &t, &s.n)}
}

// bit returns bit i of the scalar, where bit 0 is the least significant.
func (s Scalar) bit(i uint) uint64 {
	return (s.n[i/64] >> (i % 64)) & 1
}
