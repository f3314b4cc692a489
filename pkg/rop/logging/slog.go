package logging

import (
	"context"
	"io"
	"log/slog"
)

// Levels outside the range slog names.
const (
	SlogLevelTrace    = slog.LevelDebug - 4
	SlogLevelCritical = slog.LevelError + 4
)

// ContextKey is the attribute that carries the log context.
const ContextKey = "context"

// SlogAdapter writes through a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// NewTextAdapter writes slog text records to w at or above minLevel.
func NewTextAdapter(w io.Writer, minLevel Level) *SlogAdapter {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(w, handlerOptions(minLevel))))
}

// NewJSONAdapter writes slog JSON records to w at or above minLevel.
func NewJSONAdapter(w io.Writer, minLevel Level) *SlogAdapter {
	return NewSlogAdapter(slog.New(slog.NewJSONHandler(w, handlerOptions(minLevel))))
}

func handlerOptions(minLevel Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: ToSlogLevel(minLevel),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				switch lvl {
				case SlogLevelTrace:
					a.Value = slog.StringValue("TRACE")
				case SlogLevelCritical:
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
}

func (a *SlogAdapter) Log(message string, level Level, logContext string, args ...any) {
	a.logger.With(ContextKey, logContext).Log(context.Background(), ToSlogLevel(level), message, args...)
}

// ToSlogLevel maps a Level onto slog. Unknown levels map to Info.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return SlogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInformation:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return SlogLevelCritical
	}
	return slog.LevelInfo
}
