package interfaces

import "errors"

// Persistence-level sentinels shared by repositories and usecases. They map
// conditional-write failures to domain-meaningful outcomes without leaking
// SDK error types upward.
var (
	// ErrVersionConflict signals an optimistic-concurrency token mismatch on
	// the order aggregate; callers re-read and retry a bounded number of times.
	ErrVersionConflict = errors.New("aggregate version conflict")

	// ErrAlreadyExists signals a conditional put lost to an existing row
	// (duplicate id, or an open cart already held for the pair).
	ErrAlreadyExists = errors.New("row already exists")

	// ErrOvercommitted signals that the booking commitment guard rejected a
	// quantity that would exceed the item's ordered quantity.
	ErrOvercommitted = errors.New("booked quantity would exceed item quantity")

	// ErrNotFound signals a conditional update against a row that no longer
	// exists, such as a booking deleted between the caller's read and write.
	ErrNotFound = errors.New("row does not exist")
)
