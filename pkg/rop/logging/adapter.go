package logging

// Adapter writes one log statement. The adapter interprets args according to
// its backend's convention.
type Adapter interface {
	Log(message string, level Level, logContext string, args ...any)
}

// Provider hands out the configured adapter. It fails when logging was never
// configured or is disabled.
type Provider interface {
	Logger() (Adapter, error)
}

// AdapterFunc lets a plain function serve as an Adapter.
type AdapterFunc func(message string, level Level, logContext string, args ...any)

func (f AdapterFunc) Log(message string, level Level, logContext string, args ...any) {
	f(message, level, logContext, args...)
}
