package rop

import (
	"time"

	"github.com/google/uuid"
)

// Status is implemented by both Result[T] and Outcome.
type Status interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Errors returns the failure causes; panics on success
	Errors() []Error
	// SummaryErrorMessages joins the error messages; panics on success
	SummaryErrorMessages() string
	// Err returns the failure causes as a plain error, nil on success
	Err() error
	// ID identifies the result
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider is a Status that carries a value on success.
type ValueProvider[T any] interface {
	Status
	// Value returns the successful result value; panics on failure
	Value() T
	// Get returns the value and whether it is present
	Get() (T, bool)
}

var (
	_ Status             = Outcome{}
	_ ValueProvider[int] = Result[int]{}
)
