package domain

import "errors"

var (
	// ErrStoreUnavailable wraps every connectivity or authentication failure
	// of the backing table. Fatal at startup, surfaced per operation later.
	ErrStoreUnavailable = errors.New("schedule store unavailable")

	// ErrMalformedKey marks a key that does not follow the slot or
	// annotation key scheme.
	ErrMalformedKey = errors.New("malformed key")

	// ErrUnknownSlot marks a well-formed key whose (date, community, time)
	// is not part of the configured catalog and year.
	ErrUnknownSlot = errors.New("slot not in catalog")

	// ErrUnknownYear marks a request for a year other than the configured one.
	ErrUnknownYear = errors.New("year not managed by this roster")
)
