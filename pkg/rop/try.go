package rop

// Try runs action and converts any returned error or panic into a failed
// Outcome through handler. A nil handler turns the error message into a
// generic failure. Panics never escape Try.
func Try(action func() error, handler func(err error) Error) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Failed(handle(handler, &PanicError{Value: rec}))
		}
	}()

	if err := action(); err != nil {
		return Failed(handle(handler, err))
	}
	return Done()
}

// TryValue is Try for an action that produces a value.
func TryValue[T any](action func() (T, error), handler func(err error) Error) (out Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](handle(handler, &PanicError{Value: rec}))
		}
	}()

	v, err := action()
	if err != nil {
		return Fail[T](handle(handler, err))
	}
	return Success(v)
}

func handle(handler func(err error) Error, err error) Error {
	if handler == nil {
		return Failure(err.Error())
	}
	return handler(err)
}
