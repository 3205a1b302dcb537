package models

import (
	"database/sql"
	"time"
)

// Submission represents a row in the submissions table. The
// (CANDIDATE_ID, INTERVIEW_ID, QUESTION_ID) triple is unique.
type Submission struct {
	ID           string          `db:"ID"` // ULID
	CandidateID  string          `db:"CANDIDATE_ID"`
	InterviewID  string          `db:"INTERVIEW_ID"`
	QuestionID   string          `db:"QUESTION_ID"`
	AnswerText   sql.NullString  `db:"ANSWER_TEXT"`
	MetricScore  sql.NullFloat64 `db:"METRIC_SCORE"` // written by an external scorer
	IsAnonymous  bool            `db:"IS_ANONYMOUS"`
	ConsentGiven bool            `db:"CONSENT_GIVEN"`
	Meta         JSONMap         `db:"META"`
	SubmittedAt  time.Time       `db:"SUBMITTED_AT"`
}
