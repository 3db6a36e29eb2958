package moneymanager

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName   = errors.New("user name must not be empty")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidReason = errors.New("reason must not be empty")
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrNotFound      = errors.New("user not found")
	ErrDuplicateName = errors.New("user already exists")
	ErrTooManyUsers  = errors.New("maximum number of users reached")
	ErrFormat        = errors.New("invalid ledger format")
	ErrWrite         = errors.New("could not persist ledger")
)

// WriteError reports that a mutation was applied in memory but could not be
// persisted. It matches both ErrWrite and the backend error.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not persist ledger %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }
