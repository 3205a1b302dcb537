package validation

import (
	"regexp"
	"strings"

	"interviewhub/internal/domain"
)

// MaxAnswerLength caps free-text answers before they reach the domain
// layer.
const MaxAnswerLength = 2000

// Validator provides request-shape validation. It checks formats and
// sizes only; business rules live in the domain layer.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID validates a path or body identifier under the given field
// name.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}

	return errors
}

// ValidateCreateSubmissionShape validates the sizes and formats of a
// submission request before the service resolves its references.
func (v *Validator) ValidateCreateSubmissionShape(interviewID, questionID, answerText string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateID("interview", interviewID)...)
	errors = append(errors, v.ValidateID("question", questionID)...)

	if len(answerText) > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer_text", len(answerText), 0, MaxAnswerLength))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford Base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
