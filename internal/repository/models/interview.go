package models

import (
	"database/sql"
	"time"
)

// Interview represents a row in the interviews table. The question and
// allowed-participant sets live in their own association tables.
type Interview struct {
	ID              string         `db:"ID"` // ULID
	OwnerID         string         `db:"OWNER_ID"`
	Title           string         `db:"TITLE"`
	Description     sql.NullString `db:"DESCRIPTION"`
	ScheduledAt     sql.NullTime   `db:"SCHEDULED_AT"`
	IsPublished     bool           `db:"IS_PUBLISHED"`
	Confidentiality string         `db:"CONFIDENTIALITY"`
	ProjectCode     sql.NullString `db:"PROJECT_CODE"`
	CreatedAt       time.Time      `db:"CREATED_AT"`
	UpdatedAt       time.Time      `db:"UPDATED_AT"`
}

// InterviewQuestion represents a row in the interview_questions
// association table.
type InterviewQuestion struct {
	InterviewID string `db:"INTERVIEW_ID"`
	QuestionID  string `db:"QUESTION_ID"`
}

// InterviewParticipant represents a row in the interview_participants
// association table.
type InterviewParticipant struct {
	InterviewID string `db:"INTERVIEW_ID"`
	UserID      string `db:"USER_ID"`
}
