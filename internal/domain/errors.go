package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// resource does not exist in the current session snapshot.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty expense description, malformed start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOutOfRange is returned when an index points outside the targeted
// sequence. Unlike destination indexes (which are clamped), a source index
// must identify the exact item the caller saw, so it is rejected.
var ErrOutOfRange = errors.New("index out of range")

// ErrLastDay is returned when the caller tries to remove the only remaining
// day. The itinerary must always contain at least one day.
var ErrLastDay = errors.New("cannot remove the last remaining day")

// ErrPayerOfRecord is returned when a participant cannot be removed because
// they are the payer on one or more recorded expenses. The caller must
// delete or reassign those expenses first.
var ErrPayerOfRecord = errors.New("participant is a payer of record")

// ErrConfirmationRequired is returned when removing a participant would
// strip them from the involved set of existing expenses. The caller must
// retry with explicit confirmation to proceed.
var ErrConfirmationRequired = errors.New("confirmation required")
