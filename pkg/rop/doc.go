// Package rop holds the result values used by every other package:
// Error and Code for domain failures, Result[T] for operations that yield a
// value, and Outcome for operations that do not.
//
// Results are immutable. A failed result always carries its errors in the
// order they were supplied; a successful one never exposes errors. Reading
// the wrong side (Value of a failure, Errors of a success) is a programming
// error and panics with an *InvalidOperationError.
package rop
