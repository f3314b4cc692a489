package logging

import (
	"github.com/ib-77/railway/pkg/rop"
)

// DefaultContext tags every statement written by the result helpers.
const DefaultContext = "ResultLogger"

// Log writes message at level and returns r unchanged. It panics with the
// provider's error when no adapter is available.
func Log[R rop.Status](p Provider, r R, message string, level Level, args ...any) R {
	logger, err := p.Logger()
	if err != nil {
		panic(err)
	}
	logger.Log(message, level, DefaultContext, args...)
	return r
}

func Trace[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelTrace, args...)
}

func Debug[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelDebug, args...)
}

func Information[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelInformation, args...)
}

func Warning[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelWarning, args...)
}

func Error[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelError, args...)
}

func Critical[R rop.Status](p Provider, r R, message string, args ...any) R {
	return Log(p, r, message, LevelCritical, args...)
}

// IfSuccess logs message at Information when r succeeded.
func IfSuccess[R rop.Status](p Provider, r R, message string, args ...any) R {
	return IfSuccessAt(p, r, message, LevelInformation, args...)
}

func IfSuccessAt[R rop.Status](p Provider, r R, message string, level Level, args ...any) R {
	if r.IsSuccess() {
		return Log(p, r, message, level, args...)
	}
	return r
}

// IfFailure logs the error summary of r at Error when r failed.
func IfFailure[R rop.Status](p Provider, r R, args ...any) R {
	if r.IsFailure() {
		return Log(p, r, r.SummaryErrorMessages(), LevelError, args...)
	}
	return r
}

// IfFailureWith logs message at level when r failed.
func IfFailureWith[R rop.Status](p Provider, r R, message string, level Level, args ...any) R {
	if r.IsFailure() {
		return Log(p, r, message, level, args...)
	}
	return r
}
