package domain

import "errors"

var (
	// ErrConflict means the (list, schedule, agent) slot is already taken.
	ErrConflict = errors.New("schedule already taken for this list")
	// ErrNotFound means a referenced autopilot, email or offer is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest means an empty batch, a missing owner or a malformed
	// argument.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRemoteFailure wraps failures of the store or an external service.
	ErrRemoteFailure = errors.New("remote failure")
	// ErrSkippedNotFuture means a revert was refused because the email's send
	// time is not in the future.
	ErrSkippedNotFuture = errors.New("scheduled time is not in the future")
)
