package intl

import (
	"context"
	"fmt"

	"github.com/pitabwire/util"
)

// ErrorCode classifies the diagnostics a provider can report. Only
// CodeInvalidKey is raised by this package; the remaining codes form
// the shared contract consumed by the lookup and formatting modules.
type ErrorCode string

const (
	CodeInvalidKey          = ErrorCode("INVALID_KEY")
	CodeMissingMessage      = ErrorCode("MISSING_MESSAGE")
	CodeInsufficientPath    = ErrorCode("INSUFFICIENT_PATH")
	CodeInvalidMessage      = ErrorCode("INVALID_MESSAGE")
	CodeFormattingError     = ErrorCode("FORMATTING_ERROR")
	CodeEnvironmentFallback = ErrorCode("ENVIRONMENT_FALLBACK")
)

// Error is a reported localization diagnostic. It is always funneled
// through the provider's error handler, never returned as a fatal
// failure and never raised as a panic.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorHandler receives diagnostics as they occur. The host application
// decides whether to log, surface or ignore them.
type ErrorHandler func(ctx context.Context, err *Error)

// FallbackInfo describes a failed message resolution handed to a
// FallbackFunc.
type FallbackInfo struct {
	Namespace string
	Key       string
	Err       *Error
}

// FallbackFunc produces the text rendered in place of a message that
// could not be resolved.
type FallbackFunc func(info FallbackInfo) string

func defaultErrorHandler(ctx context.Context, err *Error) {
	util.Log(ctx).WithField("code", string(err.Code)).Error(err.Message)
}

// defaultMessageFallback joins the namespace and key the same way
// lookup paths are written, so the on-screen text still identifies the
// message that failed.
func defaultMessageFallback(info FallbackInfo) string {
	if info.Namespace == "" {
		return info.Key
	}
	return info.Namespace + "." + info.Key
}
