package dto

import "time"

// CreateSubmissionRequest carries the client-writable submission
// fields. The candidate, metric score and submission time are
// server-assigned and have no place here.
// @Description Request body for creating a submission
type CreateSubmissionRequest struct {
	Interview    string         `json:"interview"`
	Question     string         `json:"question"`
	AnswerText   string         `json:"answer_text"`
	IsAnonymous  bool           `json:"is_anonymous"`
	ConsentGiven bool           `json:"consent_given"`
	Meta         map[string]any `json:"meta"`
}

// SubmissionResponse is the full rendering of a submission.
type SubmissionResponse struct {
	ID           string         `json:"id"`
	Candidate    string         `json:"candidate"`
	Interview    string         `json:"interview"`
	Question     string         `json:"question"`
	AnswerText   string         `json:"answer_text"`
	MetricScore  *float64       `json:"metric_score"`
	IsAnonymous  bool           `json:"is_anonymous"`
	ConsentGiven bool           `json:"consent_given"`
	Meta         map[string]any `json:"meta"`
	SubmittedAt  time.Time      `json:"submitted_at"`
}

// SubmissionListResponse wraps a submission listing.
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}
