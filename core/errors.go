package core

import "errors"

var (
	// ErrInvalidState is returned when AddEvent or EndSession is called
	// without an active session.
	ErrInvalidState = errors.New("invalid state: no active session")

	// ErrInvalidConfiguration is returned when the SDK or a store backend is
	// built from incomplete or malformed settings.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIOFailure wraps any error reported by the underlying Store.
	ErrIOFailure = errors.New("store i/o failure")

	// ErrInvalidEvent is returned for an empty event name or properties the
	// document encoder cannot represent.
	ErrInvalidEvent = errors.New("invalid event")
)
