package dto

import "time"

// CreateInterviewRequest carries the client-writable interview fields.
// The owner is never part of the request; it is assigned from the
// authenticated caller.
// @Description Request body for creating an interview
type CreateInterviewRequest struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	IsPublished         bool       `json:"is_published"`
	ScheduledAt         *time.Time `json:"scheduled_at"`
	Confidentiality     string     `json:"confidentiality"`
	ProjectCode         string     `json:"project_code"`
	Questions           []string   `json:"questions"`
	AllowedParticipants []string   `json:"allowed_participants"`
}

// UpdateInterviewRequest supports full and partial updates. Nil fields
// are left untouched; a non-nil Questions list fully replaces the
// association set.
// @Description Request body for updating an interview
type UpdateInterviewRequest struct {
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	IsPublished         *bool      `json:"is_published"`
	ScheduledAt         *time.Time `json:"scheduled_at"`
	Confidentiality     *string    `json:"confidentiality"`
	ProjectCode         *string    `json:"project_code"`
	Questions           *[]string  `json:"questions"`
	AllowedParticipants *[]string  `json:"allowed_participants"`
}

// InterviewResponse is the full rendering of an interview, including
// both the raw question id list and expanded summaries.
type InterviewResponse struct {
	ID                  string            `json:"id"`
	Owner               string            `json:"owner"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Questions           []string          `json:"questions"`
	QuestionDetails     []QuestionSummary `json:"question_details"`
	ScheduledAt         *time.Time        `json:"scheduled_at"`
	IsPublished         bool              `json:"is_published"`
	Confidentiality     string            `json:"confidentiality"`
	ProjectCode         string            `json:"project_code"`
	AllowedParticipants []string          `json:"allowed_participants"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// InterviewListResponse wraps an interview listing.
type InterviewListResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
}
