package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/repository/models"
	"interviewhub/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionColumns() []string {
	return []string{"ID", "CANDIDATE_ID", "INTERVIEW_ID", "QUESTION_ID", "ANSWER_TEXT",
		"METRIC_SCORE", "IS_ANONYMOUS", "CONSENT_GIVEN", "META", "SUBMITTED_AT"}
}

func TestToDomainSubmission(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	score := 0.85
	m := &models.Submission{
		ID:           "s1",
		CandidateID:  "u1",
		InterviewID:  "iv1",
		QuestionID:   "q1",
		AnswerText:   util.StringToNullString("Slack"),
		MetricScore:  util.FloatPtrToNullFloat64(&score),
		IsAnonymous:  true,
		ConsentGiven: true,
		Meta:         models.JSONMap{"source": "webapp"},
		SubmittedAt:  now,
	}

	s := toDomainSubmission(m)
	require.NotNil(t, s)
	assert.Equal(t, "Slack", s.AnswerText)
	require.NotNil(t, s.MetricScore)
	assert.Equal(t, 0.85, *s.MetricScore)
	assert.True(t, s.IsAnonymous)
	assert.Equal(t, "webapp", s.Meta["source"])

	// Unscored submission carries a nil pointer.
	m.MetricScore.Valid = false
	assert.Nil(t, toDomainSubmission(m).MetricScore)

	assert.Nil(t, toDomainSubmission(nil))
}

func TestCreateSubmission(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXSubmissionRepository(db)

		mock.ExpectExec(`INSERT INTO submissions`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		submission := domain.NewSubmission("u1", "iv1", "q1", "Slack")
		err := repo.CreateSubmission(context.Background(), submission)

		require.NoError(t, err)
		assert.Len(t, submission.ID, 26)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique Violation Becomes ErrDuplicateSubmission", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXSubmissionRepository(db)

		mock.ExpectExec(`INSERT INTO submissions`).
			WillReturnError(errors.New("ORA-00001: unique constraint (INTERVIEWHUB.UQ_SUBMISSION_TRIPLET) violated"))

		submission := domain.NewSubmission("u1", "iv1", "q1", "Slack")
		err := repo.CreateSubmission(context.Background(), submission)

		assert.ErrorIs(t, err, domain.ErrDuplicateSubmission)
	})

	t.Run("Other Errors Pass Through", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXSubmissionRepository(db)

		mock.ExpectExec(`INSERT INTO submissions`).
			WillReturnError(errors.New("ORA-12170: TNS:Connect timeout occurred"))

		err := repo.CreateSubmission(context.Background(), domain.NewSubmission("u1", "iv1", "q1", "Slack"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicateSubmission)
	})
}

func TestListSubmissionsByCandidate(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXSubmissionRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(submissionColumns()).
		AddRow("s2", "u1", "iv1", "q2", "3", nil, false, true, "{}", now).
		AddRow("s1", "u1", "iv1", "q1", "Slack", 0.5, false, true, `{"source":"webapp"}`, now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT \* FROM submissions WHERE candidate_id = :1 ORDER BY submitted_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	submissions, err := repo.ListSubmissionsByCandidate(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "s2", submissions[0].ID)
	assert.Nil(t, submissions[0].MetricScore)
	require.NotNil(t, submissions[1].MetricScore)
	assert.Equal(t, 0.5, *submissions[1].MetricScore)
}
