package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Confidentiality declares how interview outputs may be shared. It is
// stored and rendered but not enforced by this service.
type Confidentiality string

const (
	ConfidentialityPublic    Confidentiality = "public"
	ConfidentialityInternal  Confidentiality = "internal"
	ConfidentialityAnonymous Confidentiality = "anonymous"
)

func (c Confidentiality) IsValid() bool {
	switch c {
	case ConfidentialityPublic, ConfidentialityInternal, ConfidentialityAnonymous:
		return true
	}
	return false
}

// Interview is a named, owned collection of questions presented to
// participants as one session. The owner is always the creating caller.
type Interview struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	QuestionIDs     []string
	ScheduledAt     *time.Time
	IsPublished     bool
	Confidentiality Confidentiality
	ProjectCode     string
	// AllowedParticipantIDs is the invited-user set. Empty means any
	// authenticated user may participate.
	AllowedParticipantIDs []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewInterview creates a new Interview owned by ownerID.
func NewInterview(ownerID, title, description string) *Interview {
	now := time.Now()
	return &Interview{
		OwnerID:         ownerID,
		Title:           title,
		Description:     description,
		Confidentiality: ConfidentialityInternal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate checks the write-time invariants of the interview.
func (iv *Interview) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(iv.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if iv.OwnerID == "" {
		errs = append(errs, NewMissingFieldError("owner"))
	}
	if iv.Confidentiality != "" && !iv.Confidentiality.IsValid() {
		errs = append(errs, NewFieldError("confidentiality",
			fmt.Sprintf("Unknown confidentiality mode: %s", iv.Confidentiality)))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InterviewRepository defines the interface for interview persistence.
// Saving or updating persists the question and participant association
// sets alongside the row.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, interview *Interview) error
	GetInterviewByID(ctx context.Context, id string) (*Interview, error)
	ListInterviews(ctx context.Context) ([]Interview, error)
	UpdateInterview(ctx context.Context, interview *Interview, replaceQuestions, replaceParticipants bool) error
}
