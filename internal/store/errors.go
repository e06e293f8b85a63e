package store

import "errors"

// Sentinel errors returned by the storages. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrNotFound is returned when no record is stored under the requested
	// key. It is an expected outcome, not a storage failure.
	ErrNotFound = errors.New("record not found")

	// ErrStorage wraps every failure of the underlying key/value engine and
	// every record that cannot be decoded.
	ErrStorage = errors.New("storage failure")

	// ErrIntegrity is returned when a content addressed record no longer
	// hashes to the key it is stored under.
	ErrIntegrity = errors.New("record does not match its digest")
)
