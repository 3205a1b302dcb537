package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/repository/models"
	"interviewhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxSubmissionRepository implements domain.SubmissionRepository using sqlx.
type sqlxSubmissionRepository struct {
	db *sqlx.DB
}

// NewSQLXSubmissionRepository creates a new instance of sqlxSubmissionRepository.
func NewSQLXSubmissionRepository(db *sqlx.DB) domain.SubmissionRepository {
	return &sqlxSubmissionRepository{db: db}
}

func toDomainSubmission(m *models.Submission) *domain.Submission {
	if m == nil {
		return nil
	}
	var metricScore *float64
	if m.MetricScore.Valid {
		score := m.MetricScore.Float64
		metricScore = &score
	}
	return &domain.Submission{
		ID:           m.ID,
		CandidateID:  m.CandidateID,
		InterviewID:  m.InterviewID,
		QuestionID:   m.QuestionID,
		AnswerText:   m.AnswerText.String,
		MetricScore:  metricScore,
		IsAnonymous:  m.IsAnonymous,
		ConsentGiven: m.ConsentGiven,
		Meta:         map[string]any(m.Meta),
		SubmittedAt:  m.SubmittedAt,
	}
}

func fromDomainSubmission(s *domain.Submission) *models.Submission {
	if s == nil {
		return nil
	}
	return &models.Submission{
		ID:           s.ID,
		CandidateID:  s.CandidateID,
		InterviewID:  s.InterviewID,
		QuestionID:   s.QuestionID,
		AnswerText:   util.StringToNullString(s.AnswerText),
		MetricScore:  util.FloatPtrToNullFloat64(s.MetricScore),
		IsAnonymous:  s.IsAnonymous,
		ConsentGiven: s.ConsentGiven,
		Meta:         models.JSONMap(s.Meta),
		SubmittedAt:  s.SubmittedAt,
	}
}

// isUniqueViolation reports whether err is the Oracle unique constraint
// violation (ORA-00001), raised when the (candidate, interview,
// question) triple already exists.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "ORA-00001") || strings.Contains(msg, "unique constraint")
}

// CreateSubmission inserts a new submission. A violation of the
// uniqueness constraint on (candidate, interview, question) is
// translated into domain.ErrDuplicateSubmission so the race between two
// identical submissions yields exactly one success and one
// client-facing duplicate error.
func (r *sqlxSubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	m := fromDomainSubmission(submission)
	if m == nil {
		return fmt.Errorf("cannot save nil submission")
	}
	m.ID = util.NewULID()
	if m.SubmittedAt.IsZero() {
		m.SubmittedAt = time.Now()
	}

	query := `INSERT INTO submissions (ID, CANDIDATE_ID, INTERVIEW_ID, QUESTION_ID, ANSWER_TEXT, METRIC_SCORE, IS_ANONYMOUS, CONSENT_GIVEN, META, SUBMITTED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.CandidateID,
		m.InterviewID,
		m.QuestionID,
		m.AnswerText,
		m.MetricScore,
		m.IsAnonymous,
		m.ConsentGiven,
		m.Meta,
		m.SubmittedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to create submission: %w", err)
	}

	submission.ID = m.ID
	submission.SubmittedAt = m.SubmittedAt
	return nil
}

// ListSubmissionsByCandidate returns the candidate's own submissions
// newest-first.
func (r *sqlxSubmissionRepository) ListSubmissionsByCandidate(ctx context.Context, candidateID string) ([]domain.Submission, error) {
	var ms []models.Submission
	query := `SELECT * FROM submissions WHERE candidate_id = :1 ORDER BY submitted_at DESC`

	if err := r.db.SelectContext(ctx, &ms, query, candidateID); err != nil {
		return nil, fmt.Errorf("failed to list submissions for candidate %s: %w", candidateID, err)
	}

	submissions := make([]domain.Submission, 0, len(ms))
	for i := range ms {
		submissions = append(submissions, *toDomainSubmission(&ms[i]))
	}
	return submissions, nil
}
