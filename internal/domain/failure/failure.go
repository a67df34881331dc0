// Package failure describes how a client action can fail and what the user
// is told about it.
package failure

import (
	"errors"
	"fmt"
)

// GenericMessage is shown when the backend gave no usable detail.
const GenericMessage = "request failed"

const (
	CodeTransport  = "transport"
	CodeRejected   = "rejected"
	CodeValidation = "validation"
	CodeSnapshot   = "snapshot"
	CodeInFlight   = "in_flight"
)

var (
	ErrTransport  = errors.New(GenericMessage)
	ErrValidation = errors.New("invalid input")
	ErrInFlight   = errors.New("operation already in progress")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GenericMessage
}

// DomainError carries the user-facing message next to its cause.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Transport wraps a network-level error.
func Transport(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// Validation builds a local validation failure.
func Validation(format string, args ...any) *DomainError {
	return &DomainError{
		Err:     ErrValidation,
		Message: fmt.Sprintf(format, args...),
		Code:    CodeValidation,
	}
}

// Wrap classifies err and picks the message: the server detail when there
// is one, fallback otherwise.
func Wrap(err error, fallback string) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		msg := apiErr.Detail
		if msg == "" {
			msg = fallback
		}
		return &DomainError{Err: err, Message: msg, Code: CodeRejected}
	case errors.Is(err, ErrInFlight):
		return &DomainError{Err: err, Message: ErrInFlight.Error(), Code: CodeInFlight}
	default:
		return &DomainError{Err: err, Message: fallback, Code: CodeTransport}
	}
}

// Message returns the text a presentation layer should show for err.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	return Wrap(err, fallback).Error()
}

// CodeOf returns the DomainError code of err, or "" when err is not one.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
