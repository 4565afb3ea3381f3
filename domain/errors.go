package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrAccountExists   = NewDomainError("account already exists")
	ErrAccountNotFound = NewDomainError("account not found")
	ErrUnknownCurrency = NewDomainError("unknown currency")
)

// AccountNotFoundError is returned by every ledger operation whose account id
// does not resolve. It matches ErrAccountNotFound under errors.Is.
type AccountNotFoundError struct {
	ID uuid.UUID
}

func (e AccountNotFoundError) Error() string {
	return fmt.Sprintf("no such account registered in this ledger: %s", e.ID)
}

func (e AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}
