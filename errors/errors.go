// Package errors represents some useful helpers for error-handling improvement.
package errors

import "fmt"

// ConstError is just a simple string error.
type ConstError string

// type check
var _ error = (*ConstError)(nil)

// Error implements [error] interface for ConstError.
func (e ConstError) Error() string {
	return string(e)
}

// Annotate wraps err with message unless err is nil.
func Annotate(err error, format string, args ...any) (annotated error) {
	if err == nil {
		return err
	}

	return fmt.Errorf(format, append(args, err)...)
}

// Sentinel errors returned by the cipher engine.  Callers compare against
// these directly (ConstError is comparable) rather than type-asserting.
const (
	// ErrInvalidKeySize is returned when a key does not match the size
	// required by the selected variant (8 bytes for DES, 24 for DESX/3DES).
	ErrInvalidKeySize = ConstError("invalid key size")

	// ErrInvalidIVSize is returned when an IV is not exactly 8 bytes.
	ErrInvalidIVSize = ConstError("invalid IV size")

	// ErrInvalidVariant is returned for a variant selector outside {DES, DESX, 3DES}.
	ErrInvalidVariant = ConstError("invalid cipher variant")

	// ErrInvalidMode is returned for a mode selector outside {ECB, CBC, CFB, OFB-ISO, OFB-FIPS81}.
	ErrInvalidMode = ConstError("invalid cipher mode")

	// ErrInvalidDirection is returned for a direction flag other than encrypt/decrypt.
	ErrInvalidDirection = ConstError("invalid direction")

	// ErrInvalidLength is the RE_LEN sentinel: Update was called with a
	// buffer length that is not a multiple of 8.
	ErrInvalidLength = ConstError("input length is not a multiple of the block size")

	// ErrInvalidFeedbackWidth is returned when n is outside {1, 8, 16, 32, 64}
	// for CFB or either OFB mode.
	ErrInvalidFeedbackWidth = ConstError("feedback width must be one of 1, 8, 16, 32, 64")
)
