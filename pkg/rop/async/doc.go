// Package async runs the solo combinators over pending computations.
//
// A Future is a computation running on its own goroutine that settles
// exactly once, either with a value or with a fault. A fault is not a domain
// failure: it records that the computation was cancelled (its context ended
// first) or panicked. Every combinator first waits for its upstream future,
// then applies the same branching as its solo counterpart on a new
// goroutine; a faulted upstream is propagated without running the
// continuation.
//
// AwaitResult and AwaitOutcome are the blocking boundary back to plain
// values: they turn a cancellation into a failure with the message
// "The operation was canceled." and any other fault into a failure carrying
// the fault message.
//
// Continuations come in two flavours: plain functions returning a result,
// and ...Future variants whose continuation starts more asynchronous work
// and returns a Future.
package async
