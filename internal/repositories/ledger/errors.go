package ledger

import "errors"

var (
	// ErrPersistenceUnavailable is returned when the backing store cannot be read or written
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrMalformedState marks stored data that could not be decoded
	ErrMalformedState = errors.New("malformed ledger state")
)
