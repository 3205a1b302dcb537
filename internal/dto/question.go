package dto

import "time"

// CreateQuestionRequest carries the client-writable question fields.
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	QType   string   `json:"qtype"`
	Tags    []string `json:"tags"`
	Options []string `json:"options"`
}

// QuestionResponse is the full rendering of a question.
type QuestionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	QType     string    `json:"qtype"`
	Tags      []string  `json:"tags"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionSummary is the compact rendering embedded in interview reads.
type QuestionSummary struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	QType string   `json:"qtype"`
	Tags  []string `json:"tags"`
}

// QuestionListResponse wraps a question listing.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}
