// Package logging is the bridge between results and a logging backend.
//
// An Adapter receives (message, level, context, args) and formats them the
// way its backend does; SlogAdapter targets log/slog, where args are
// key/value attributes. The result helpers (Trace ... Critical, IfSuccess,
// IfFailure) look the adapter up through a Provider, usually a
// *config.Config, log once and return the result unchanged.
package logging
