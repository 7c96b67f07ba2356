// Package common defines shared constants and the error taxonomy used across
// the service layers. Callers should use errors.Is / errors.As to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
)

// Kind classifies an Error for propagation decisions at the transport edge.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindConfiguration
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindConfiguration:
		return "configuration"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by the auth core and the user service.
//
// Code is one of the UM* codes declared in error.go; Message is safe to show
// to a caller; Err, when set, carries the underlying cause and is never
// rendered to clients.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches kind sentinels (ErrValidation, ErrAuthentication, ...) by kind
// and any other *Error by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return t.Kind == e.Kind
	}
	return t.Code == e.Code
}

// Kind sentinels.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrConfiguration  = &Error{Kind: KindConfiguration}
	ErrSystem         = &Error{Kind: KindSystem}
)

// NewValidationError reports caller-supplied malformed input.
func NewValidationError(code Code, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg}
}

// NewAuthenticationError reports bad credentials or an unusable token.
func NewAuthenticationError(code Code, msg string, cause error) *Error {
	return &Error{Kind: KindAuthentication, Code: code, Message: msg, Err: cause}
}

// NewConfigurationError reports missing or invalid process configuration.
func NewConfigurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Code: CodeConfiguration, Message: msg}
}

// NewSystemError reports an unexpected failure of an underlying primitive.
func NewSystemError(code Code, msg string, cause error) *Error {
	return &Error{Kind: KindSystem, Code: code, Message: msg, Err: cause}
}

// KindOf returns the Kind of err, or KindSystem if err carries no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindSystem
}
