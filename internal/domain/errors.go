package domain

import "errors"

// Shared error taxonomy. Validation errors (ErrInvalidRange, ErrBeforeCutoff,
// ErrOverlap) are expected user-facing outcomes; ErrConflict and
// ErrUnavailable are retried a bounded number of times before surfacing.
var (
	ErrInvalidRange     = errors.New("start date must be before end date")
	ErrBeforeCutoff     = errors.New("room is not available until its blocked date")
	ErrOverlap          = errors.New("dates overlap an existing booking")
	ErrConflict         = errors.New("booking conflict")
	ErrAlreadyFinalized = errors.New("payment session already finalized")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnavailable      = errors.New("storage temporarily unavailable")
)
