package escrow

import "errors"

var (
	// ErrLengthMismatch rejects asset/value sequences of different lengths.
	ErrLengthMismatch = errors.New("escrow: assets and values length mismatch")
	// ErrInvalidValue rejects nil or negative token ids and amounts. A
	// negative amount would invert a transfer.
	ErrInvalidValue = errors.New("escrow: value must be a non-negative integer")
	// ErrNotFound means no bundle or offer was ever created with the id.
	ErrNotFound = errors.New("escrow: record not found")
	// ErrUnauthorized means the caller is not the record's owner.
	ErrUnauthorized = errors.New("escrow: caller not authorized")
	// ErrNotActive means the record already left the created status.
	ErrNotActive = errors.New("escrow: record not in created status")
	// ErrBundleMismatch means the offer does not target the given bundle.
	ErrBundleMismatch = errors.New("escrow: offer does not target bundle")
	// ErrReentrantCall rejects an operation started while another one
	// is still executing. Operations never interleave.
	ErrReentrantCall = errors.New("escrow: operation already in progress")
)
