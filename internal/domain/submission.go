package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateSubmission is returned by the repository when the
// (candidate, interview, question) uniqueness constraint is violated.
var ErrDuplicateSubmission = errors.New("duplicate submission")

// DuplicateSubmissionMessage is the client-facing text for a duplicate
// answer, surfaced as a non-field validation error.
const DuplicateSubmissionMessage = "You have already answered this question for this interview"

// Submission is one participant's answer to one question within one
// interview. CandidateID, MetricScore and SubmittedAt are
// server-assigned and never accepted from client input.
type Submission struct {
	ID           string
	CandidateID  string
	InterviewID  string
	QuestionID   string
	AnswerText   string
	MetricScore  *float64 // populated by an external scoring process
	IsAnonymous  bool
	ConsentGiven bool
	Meta         map[string]any
	SubmittedAt  time.Time
}

// NewSubmission creates a Submission attributed to candidateID.
func NewSubmission(candidateID, interviewID, questionID, answerText string) *Submission {
	return &Submission{
		CandidateID: candidateID,
		InterviewID: interviewID,
		QuestionID:  questionID,
		AnswerText:  answerText,
		SubmittedAt: time.Now(),
	}
}

// Validate checks the structural invariants of the submission.
func (s *Submission) Validate() error {
	var errs ValidationErrors
	if s.CandidateID == "" {
		errs = append(errs, NewMissingFieldError("candidate"))
	}
	if s.InterviewID == "" {
		errs = append(errs, NewMissingFieldError("interview"))
	}
	if s.QuestionID == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmissionRepository defines the interface for submission persistence.
// CreateSubmission returns ErrDuplicateSubmission when the
// (candidate, interview, question) triple already exists.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *Submission) error
	ListSubmissionsByCandidate(ctx context.Context, candidateID string) ([]Submission, error)
}
