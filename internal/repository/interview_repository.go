package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/repository/models"
	"interviewhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxInterviewRepository implements domain.InterviewRepository using sqlx.
type sqlxInterviewRepository struct {
	db *sqlx.DB
}

// NewSQLXInterviewRepository creates a new instance of sqlxInterviewRepository.
func NewSQLXInterviewRepository(db *sqlx.DB) domain.InterviewRepository {
	return &sqlxInterviewRepository{db: db}
}

func toDomainInterview(m *models.Interview) *domain.Interview {
	if m == nil {
		return nil
	}
	var scheduledAt *time.Time
	if m.ScheduledAt.Valid {
		t := m.ScheduledAt.Time
		scheduledAt = &t
	}
	return &domain.Interview{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description.String,
		ScheduledAt:     scheduledAt,
		IsPublished:     m.IsPublished,
		Confidentiality: domain.Confidentiality(m.Confidentiality),
		ProjectCode:     m.ProjectCode.String,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromDomainInterview(iv *domain.Interview) *models.Interview {
	if iv == nil {
		return nil
	}
	var scheduledAt sql.NullTime
	if iv.ScheduledAt != nil {
		scheduledAt = util.TimeToNullTime(*iv.ScheduledAt)
	}
	return &models.Interview{
		ID:              iv.ID,
		OwnerID:         iv.OwnerID,
		Title:           iv.Title,
		Description:     util.StringToNullString(iv.Description),
		ScheduledAt:     scheduledAt,
		IsPublished:     iv.IsPublished,
		Confidentiality: string(iv.Confidentiality),
		ProjectCode:     util.StringToNullString(iv.ProjectCode),
		CreatedAt:       iv.CreatedAt,
		UpdatedAt:       iv.UpdatedAt,
	}
}

// CreateInterview inserts a new interview row and its question and
// allowed-participant association sets in one transaction.
func (r *sqlxInterviewRepository) CreateInterview(ctx context.Context, interview *domain.Interview) error {
	m := fromDomainInterview(interview)
	if m == nil {
		return fmt.Errorf("cannot save nil interview")
	}
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO interviews (ID, OWNER_ID, TITLE, DESCRIPTION, SCHEDULED_AT, IS_PUBLISHED, CONFIDENTIALITY, PROJECT_CODE, CREATED_AT, UPDATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`
	_, err = tx.ExecContext(ctx, query,
		m.ID,
		m.OwnerID,
		m.Title,
		m.Description,
		m.ScheduledAt,
		m.IsPublished,
		m.Confidentiality,
		m.ProjectCode,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}

	if err := insertQuestionSet(ctx, tx, m.ID, interview.QuestionIDs); err != nil {
		return err
	}
	if err := insertParticipantSet(ctx, tx, m.ID, interview.AllowedParticipantIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit interview: %w", err)
	}

	interview.ID = m.ID
	interview.CreatedAt = m.CreatedAt
	interview.UpdatedAt = m.UpdatedAt
	return nil
}

func insertQuestionSet(ctx context.Context, tx *sqlx.Tx, interviewID string, questionIDs []string) error {
	query := `INSERT INTO interview_questions (INTERVIEW_ID, QUESTION_ID) VALUES (:1, :2)`
	for _, qid := range questionIDs {
		if _, err := tx.ExecContext(ctx, query, interviewID, qid); err != nil {
			return fmt.Errorf("failed to attach question %s: %w", qid, err)
		}
	}
	return nil
}

func insertParticipantSet(ctx context.Context, tx *sqlx.Tx, interviewID string, userIDs []string) error {
	query := `INSERT INTO interview_participants (INTERVIEW_ID, USER_ID) VALUES (:1, :2)`
	for _, uid := range userIDs {
		if _, err := tx.ExecContext(ctx, query, interviewID, uid); err != nil {
			return fmt.Errorf("failed to add participant %s: %w", uid, err)
		}
	}
	return nil
}

// GetInterviewByID retrieves an interview with its association sets.
func (r *sqlxInterviewRepository) GetInterviewByID(ctx context.Context, id string) (*domain.Interview, error) {
	var m models.Interview
	query := `SELECT * FROM interviews WHERE id = :1`

	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview by id %s: %w", id, err)
	}

	interview := toDomainInterview(&m)
	if interview.QuestionIDs, err = r.questionIDsFor(ctx, id); err != nil {
		return nil, err
	}
	if interview.AllowedParticipantIDs, err = r.participantIDsFor(ctx, id); err != nil {
		return nil, err
	}
	return interview, nil
}

func (r *sqlxInterviewRepository) questionIDsFor(ctx context.Context, interviewID string) ([]string, error) {
	var ids []string
	query := `SELECT question_id FROM interview_questions WHERE interview_id = :1`
	if err := r.db.SelectContext(ctx, &ids, query, interviewID); err != nil {
		return nil, fmt.Errorf("failed to load question set for interview %s: %w", interviewID, err)
	}
	return ids, nil
}

func (r *sqlxInterviewRepository) participantIDsFor(ctx context.Context, interviewID string) ([]string, error) {
	var ids []string
	query := `SELECT user_id FROM interview_participants WHERE interview_id = :1`
	if err := r.db.SelectContext(ctx, &ids, query, interviewID); err != nil {
		return nil, fmt.Errorf("failed to load participant set for interview %s: %w", interviewID, err)
	}
	return ids, nil
}

// ListInterviews returns all interviews newest-first. Read scoping by
// publish state or allowed participants is intentionally not applied.
func (r *sqlxInterviewRepository) ListInterviews(ctx context.Context) ([]domain.Interview, error) {
	var ms []models.Interview
	query := `SELECT * FROM interviews ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	questionSets, err := r.groupedAssociations(ctx,
		`SELECT interview_id, question_id FROM interview_questions`)
	if err != nil {
		return nil, err
	}
	participantSets, err := r.groupedAssociations(ctx,
		`SELECT interview_id, user_id FROM interview_participants`)
	if err != nil {
		return nil, err
	}

	interviews := make([]domain.Interview, 0, len(ms))
	for i := range ms {
		iv := toDomainInterview(&ms[i])
		iv.QuestionIDs = questionSets[iv.ID]
		iv.AllowedParticipantIDs = participantSets[iv.ID]
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

// groupedAssociations loads a two-column association table and groups
// the second column by the first.
func (r *sqlxInterviewRepository) groupedAssociations(ctx context.Context, query string) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load associations: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]string)
	for rows.Next() {
		var interviewID, memberID string
		if err := rows.Scan(&interviewID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan association row: %w", err)
		}
		grouped[interviewID] = append(grouped[interviewID], memberID)
	}
	return grouped, rows.Err()
}

// UpdateInterview updates the interview row and, when the replace flags
// are set, fully replaces the corresponding association sets.
func (r *sqlxInterviewRepository) UpdateInterview(ctx context.Context, interview *domain.Interview, replaceQuestions, replaceParticipants bool) error {
	m := fromDomainInterview(interview)
	if m == nil {
		return fmt.Errorf("cannot update nil interview")
	}
	if m.ID == "" {
		return fmt.Errorf("cannot update interview with empty ID")
	}
	m.UpdatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE interviews SET
		title = :1,
		description = :2,
		scheduled_at = :3,
		is_published = :4,
		confidentiality = :5,
		project_code = :6,
		updated_at = :7
	WHERE id = :8`

	result, err := tx.ExecContext(ctx, query,
		m.Title,
		m.Description,
		m.ScheduledAt,
		m.IsPublished,
		m.Confidentiality,
		m.ProjectCode,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	if replaceQuestions {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM interview_questions WHERE interview_id = :1`, m.ID); err != nil {
			return fmt.Errorf("failed to clear question set: %w", err)
		}
		if err := insertQuestionSet(ctx, tx, m.ID, interview.QuestionIDs); err != nil {
			return err
		}
	}
	if replaceParticipants {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM interview_participants WHERE interview_id = :1`, m.ID); err != nil {
			return fmt.Errorf("failed to clear participant set: %w", err)
		}
		if err := insertParticipantSet(ctx, tx, m.ID, interview.AllowedParticipantIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit interview update: %w", err)
	}
	interview.UpdatedAt = m.UpdatedAt
	return nil
}
