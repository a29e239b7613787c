package xerrors

import (
	"errors"
)

// Kind classifies an error for callers that need to branch on failure mode
// without string matching.
type Kind string

const (
	// KindInsufficientData means no sub-score could be computed at all.
	KindInsufficientData Kind = "insufficient_data"
	// KindInvalidInput means a payload was rejected before any transform ran.
	KindInvalidInput Kind = "invalid_input"
	// KindConfiguration means an unknown preset or unusable configuration.
	KindConfiguration Kind = "configuration"
	KindInternal      Kind = "internal"
)

type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Validation *ValidationInfo
}

type ValidationInfo struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func InsufficientData(opts ...Option) *Error { return newErr(KindInsufficientData, opts) }
func InvalidInput(opts ...Option) *Error     { return newErr(KindInvalidInput, opts) }
func Configuration(opts ...Option) *Error    { return newErr(KindConfiguration, opts) }
func Internal(opts ...Option) *Error         { return newErr(KindInternal, opts) }

// Validation wraps per-field messages from a Validator into an invalid-input
// error.
func Validation(fields map[string]string, opts ...Option) *Error {
	e := newErr(KindInvalidInput, opts)
	e.Validation = &ValidationInfo{Fields: fields}
	return e
}

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind, Message: string(kind)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsKind(err error, kind Kind) bool {
	e := As(err)
	return e != nil && e.Kind == kind
}
