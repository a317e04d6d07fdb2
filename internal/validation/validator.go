package validation

import (
	"strings"
	"unicode/utf8"

	"vidquiz/internal/domain"
)

// MaxLocatorLength bounds the url field of a generation request.
const MaxLocatorLength = 2048

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the locator of a generation request.
// The locator's shape is left to the transcript service; only presence and size are checked.
func (v *Validator) ValidateGenerateQuizRequest(url string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(url) == "" {
		errors = append(errors, domain.NewMissingFieldError("url"))
	} else if n := utf8.RuneCountInString(url); n > MaxLocatorLength {
		errors = append(errors, domain.NewOutOfRangeError("url", n, 1, MaxLocatorLength))
	}

	return errors
}
