package rop

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// state is the part shared by Result and Outcome. It is embedded by value and
// never mutated after construction.
type state struct {
	id        uuid.UUID
	createdAt time.Time
	errors    []Error
	isSuccess bool
}

func newState(isSuccess bool, errs []Error) state {
	return state{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		errors:    slices.Clone(errs),
		isSuccess: isSuccess,
	}
}

// failedFrom keeps the identity of the upstream result when a failure is
// re-typed to the next stage.
func failedFrom(from state) state {
	if from.isSuccess {
		panic(NewInvalidOperation("a successful result can not be propagated as a failure"))
	}
	return state{
		id:        from.id,
		createdAt: from.createdAt,
		errors:    from.errors,
		isSuccess: false,
	}
}

// IsSuccess reports whether the operation succeeded.
func (s state) IsSuccess() bool {
	return s.isSuccess
}

// IsFailure is always the negation of IsSuccess.
func (s state) IsFailure() bool {
	return !s.isSuccess
}

// Errors returns a copy of the errors in the order they were supplied.
// It panics with an *InvalidOperationError on a successful result.
func (s state) Errors() []Error {
	if s.isSuccess {
		panic(NewInvalidOperation("errors can not be accessed when IsFailure is false"))
	}
	return slices.Clone(s.errors)
}

// SummaryErrorMessages joins every error message with a newline.
// It panics with an *InvalidOperationError on a successful result.
func (s state) SummaryErrorMessages() string {
	errs := s.Errors()
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}
	return strings.Join(messages, "\n")
}

// Err returns nil on success and the joined domain errors on failure.
func (s state) Err() error {
	if s.isSuccess {
		return nil
	}
	if len(s.errors) == 0 {
		return Failure()
	}
	errs := make([]error, len(s.errors))
	for i, e := range s.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// ID identifies the result; failures re-typed by combinators keep the id of
// the result they came from.
func (s state) ID() uuid.UUID {
	return s.id
}

// CreatedAt is the creation time (UTC).
func (s state) CreatedAt() time.Time {
	return s.createdAt
}
