package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline errors
	CodeTranscriptUnavailable ErrorCode = "TRANSCRIPT_UNAVAILABLE"
	CodeGenerationFailed      ErrorCode = "GENERATION_FAILED"
	CodeMalformedModelOutput  ErrorCode = "MALFORMED_MODEL_OUTPUT"
	CodePipelineFailed        ErrorCode = "PIPELINE_FAILED"
)

// PipelineFailedMessage is the only failure text a caller of the pipeline ever sees.
const PipelineFailedMessage = "Failed to generate quiz questions"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Sentinels for errors.Is checks against a code.
var (
	ErrTranscriptUnavailable = &DomainError{Code: CodeTranscriptUnavailable}
	ErrGenerationFailed      = &DomainError{Code: CodeGenerationFailed}
	ErrMalformedModelOutput  = &DomainError{Code: CodeMalformedModelOutput}
	ErrPipelineFailed        = &DomainError{Code: CodePipelineFailed}
)

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewTranscriptUnavailableError(locator string, err error) *DomainError {
	return NewError(CodeTranscriptUnavailable, fmt.Sprintf("Transcript unavailable for %q", locator), err)
}

func NewGenerationFailedError(err error) *DomainError {
	return NewError(CodeGenerationFailed, "Failed to generate content with model service", err)
}

func NewMalformedModelOutputError(err error) *DomainError {
	return NewError(CodeMalformedModelOutput, "Model output is not a valid question list", err)
}

// NewPipelineFailedError deliberately carries no cause; stage detail stays in the logs.
func NewPipelineFailedError() *DomainError {
	return NewError(CodePipelineFailed, PipelineFailedMessage, nil)
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func NewOutOfRangeError(field string, value, min, max int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s length %d is outside [%d, %d]", field, value, min, max),
	}
}

// ValidationErrors collects every field failure of one request.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
