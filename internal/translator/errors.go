package translator

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedLanguageCode is the structured error code an endpoint may send
// when it rejects the requested target language.
const UnsupportedLanguageCode = "unsupported_language"

// unsupportedLanguageMarker is matched against endpoint messages that carry
// no structured code. Case-sensitive, as the backend words it.
const unsupportedLanguageMarker = "Unsupported language"

// Error kinds reported by ErrorKind.
const (
	KindValidation          = "validation"
	KindUnsupportedLanguage = "unsupported_language"
	KindTranslationFailure  = "translation_failure"
)

// ValidationError reports bad caller input. No request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UnsupportedLanguageError reports that the endpoint rejected the target language.
type UnsupportedLanguageError struct {
	Language string
	Message  string
	Err      error
}

func (e *UnsupportedLanguageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return e.Err
}

// TranslationFailure wraps any other endpoint, transport or cancellation error.
// Segment is the zero-based index of the segment that failed.
type TranslationFailure struct {
	Segment int
	Err     error
}

func (e *TranslationFailure) Error() string {
	return fmt.Sprintf("translation failed at segment %d: %v", e.Segment+1, e.Err)
}

func (e *TranslationFailure) Unwrap() error {
	return e.Err
}

// EndpointError is returned by Endpoint implementations when the remote
// service answers with an error payload.
type EndpointError struct {
	// StatusCode is the HTTP status, or 0 when the transport has none.
	StatusCode int
	// Code is an optional machine-readable error code.
	Code    string
	Message string
	Err     error
}

func (e *EndpointError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("endpoint returned %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("endpoint error: %s", msg)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// IsUnsupportedLanguage reports whether the endpoint rejected the target language.
func (e *EndpointError) IsUnsupportedLanguage() bool {
	if e.Code != "" {
		return e.Code == UnsupportedLanguageCode
	}
	return strings.Contains(e.Message, unsupportedLanguageMarker)
}

// ErrorKind classifies an error returned by Translate.
// Returns "" for nil or unrecognized errors.
func ErrorKind(err error) string {
	var validationErr *ValidationError
	var unsupportedErr *UnsupportedLanguageError
	var failure *TranslationFailure

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &unsupportedErr):
		return KindUnsupportedLanguage
	case errors.As(err, &failure):
		return KindTranslationFailure
	default:
		return ""
	}
}

// classify turns an error from the endpoint into the error surfaced to callers.
func classify(segment int, target string, err error) error {
	var endpointErr *EndpointError
	if errors.As(err, &endpointErr) && endpointErr.IsUnsupportedLanguage() {
		return &UnsupportedLanguageError{
			Language: target,
			Message:  endpointErr.Message,
			Err:      err,
		}
	}
	return &TranslationFailure{Segment: segment, Err: err}
}
