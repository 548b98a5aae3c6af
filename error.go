// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding is returned when a compressed point encoding does
	// not have the required length, uses an unknown format byte, specifies an
	// x coordinate that is greater than or equal to the field prime, or
	// specifies an x coordinate for which no curve point exists.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrNotOnCurve is returned when coordinates supplied directly do not
	// satisfy the secp256k1 curve equation.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrUndefinedInverse is returned when attempting to invert, or divide
	// by, the field element zero.
	ErrUndefinedInverse = ErrorKind("ErrUndefinedInverse")

	// ErrDegenerateScalar is returned when a public key is requested for a
	// scalar that is zero, is not less than the group order, or otherwise
	// results in the point at infinity.
	ErrDegenerateScalar = ErrorKind("ErrDegenerateScalar")

	// ErrPointAtInfinity is returned when the point at infinity is used where
	// a finite point is required, such as serialization.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrScalarTooLong is returned when a scalar is provided as more than 32
	// bytes.
	ErrScalarTooLong = ErrorKind("ErrScalarTooLong")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 field or point arithmetic.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
