package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// QuestionType enumerates how a question is answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "Multiple Choice"
	OpenEnded      QuestionType = "Open Ended"
	Scale          QuestionType = "Scale"
)

// Scale answers are fixed to this inclusive range.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// IsValid reports whether qt is a known question type.
func (qt QuestionType) IsValid() bool {
	switch qt {
	case MultipleChoice, OpenEnded, Scale:
		return true
	}
	return false
}

// Question is a shared, unowned prompt presented to participants.
type Question struct {
	ID        string
	Title     string
	Body      string
	QType     QuestionType
	Tags      []string
	Options   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(title, body string, qtype QuestionType, tags, options []string) *Question {
	now := time.Now()
	return &Question{
		Title:     title,
		Body:      body,
		QType:     qtype,
		Tags:      tags,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the write-time invariants of the question.
func (q *Question) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if !q.QType.IsValid() {
		errs = append(errs, NewFieldError("qtype", fmt.Sprintf("Unknown question type: %s", q.QType)))
	}
	if q.QType == MultipleChoice {
		if err := validateOptions(q.Options); err != nil {
			errs = append(errs, *err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateOptions enforces the MCQ shape: at least two options, each
// non-blank after trimming.
func validateOptions(options []string) *ValidationError {
	if len(options) < 2 {
		e := NewFieldError("options", "For Multiple Choice, provide a list of at least 2 non-empty options.")
		return &e
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			e := NewFieldError("options", "Options must be non-empty strings.")
			return &e
		}
	}
	return nil
}

// ValidateAnswer checks answerText against the question's type and
// returns the normalized answer. Dispatch is exhaustive over the
// question type enumeration.
func (q *Question) ValidateAnswer(answerText string) (string, error) {
	switch q.QType {
	case MultipleChoice:
		return q.validateMultipleChoiceAnswer(answerText)
	case Scale:
		return validateScaleAnswer(answerText)
	case OpenEnded:
		return answerText, nil
	default:
		return "", FieldErrors(NewFieldError("qtype", fmt.Sprintf("Unknown question type: %s", q.QType)))
	}
}

// validateMultipleChoiceAnswer accepts either the verbatim option text
// or a zero-based integer index into the option list.
func (q *Question) validateMultipleChoiceAnswer(answerText string) (string, error) {
	for _, opt := range q.Options {
		if answerText == opt {
			return opt, nil
		}
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(answerText)); err == nil {
		if idx >= 0 && idx < len(q.Options) {
			return q.Options[idx], nil
		}
	}
	return "", FieldErrors(NewFieldError("answer_text",
		"Answer must match one of the options or be a valid option index."))
}

func validateScaleAnswer(answerText string) (string, error) {
	value, err := strconv.Atoi(strings.TrimSpace(answerText))
	if err != nil {
		return "", FieldErrors(NewFieldError("answer_text", "Scale answers must be an integer."))
	}
	if value < ScaleMin || value > ScaleMax {
		return "", FieldErrors(NewFieldError("answer_text",
			fmt.Sprintf("Scale answers must be between %d and %d.", ScaleMin, ScaleMax)))
	}
	return strconv.Itoa(value), nil
}

// HasQuestion reports whether id is in the given question id set.
func HasQuestion(questionIDs []string, id string) bool {
	for _, qid := range questionIDs {
		if qid == id {
			return true
		}
	}
	return false
}

// QuestionFilters narrows a question listing. All filters are optional
// and combinable.
type QuestionFilters struct {
	QType  string // exact match on question type
	Tag    string // case-insensitive substring over tags
	Search string // case-insensitive substring over title or body
}

// QuestionRepository defines the interface for question persistence.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *Question) error
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	GetQuestionsByIDs(ctx context.Context, ids []string) ([]Question, error)
	ListQuestions(ctx context.Context, filters QuestionFilters) ([]Question, error)
}
