package upload

import (
	"errors"
	"fmt"
)

type Reason string

const (
	ReasonPayloadTooLarge      Reason = "PayloadTooLarge"
	ReasonUnsupportedMediaType Reason = "UnsupportedMediaType"
	ReasonInvalidContent       Reason = "InvalidContent"
)

var (
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidContent       = errors.New("invalid content")
)

// ValidationError is returned when an upload is rejected before any post is
// created. The Reason is stable and safe to return to clients, and the error
// matches the corresponding sentinel using errors.Is.
type ValidationError struct {
	Reason   Reason
	Message  string
	sentinel error
	cause    error
}

func (err *ValidationError) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("%s: %s: %v", err.sentinel, err.Message, err.cause)
	}

	return fmt.Sprintf("%s: %s", err.sentinel, err.Message)
}

func (err *ValidationError) Unwrap() []error {
	if err.cause != nil {
		return []error{err.sentinel, err.cause}
	}

	return []error{err.sentinel}
}

func payloadTooLarge(message string) *ValidationError {
	return &ValidationError{Reason: ReasonPayloadTooLarge, Message: message, sentinel: ErrPayloadTooLarge}
}

func unsupportedMediaType(message string) *ValidationError {
	return &ValidationError{Reason: ReasonUnsupportedMediaType, Message: message, sentinel: ErrUnsupportedMediaType}
}

func invalidContent(message string, cause error) *ValidationError {
	return &ValidationError{Reason: ReasonInvalidContent, Message: message, sentinel: ErrInvalidContent, cause: cause}
}
