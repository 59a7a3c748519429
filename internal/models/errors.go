package models

import "errors"

// Sentinel errors shared by the calculator, storage and service layers.
// Wrap them with fmt.Errorf("...: %w", err) and classify with errors.Is.
var (
	// ErrNotFound means a referenced user, group or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSplit means payment or split amounts do not reconcile with the expense.
	ErrInvalidSplit = errors.New("invalid split")

	// ErrInvalidInput means a request field is malformed (bad amount, empty name, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateIdentity means a unique name or email is already taken.
	ErrDuplicateIdentity = errors.New("already exists")

	// ErrStoreFailure means the ledger store could not complete or commit a write.
	ErrStoreFailure = errors.New("store failure")
)
