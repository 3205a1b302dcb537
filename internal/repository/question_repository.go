package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"interviewhub/internal/domain"
	"interviewhub/internal/repository/models"
	"interviewhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of sqlxQuestionRepository.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body.String,
		QType:     domain.QuestionType(m.QType),
		Tags:      []string(m.Tags),
		Options:   []string(m.Options),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:        q.ID,
		Title:     q.Title,
		Body:      util.StringToNullString(q.Body),
		QType:     string(q.QType),
		Tags:      models.StringSlice(q.Tags),
		Options:   models.StringSlice(q.Options),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// CreateQuestion inserts a new question into the database.
func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	m := fromDomainQuestion(question)
	if m == nil {
		return fmt.Errorf("cannot save nil question")
	}
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO questions (ID, TITLE, BODY, QTYPE, TAGS, OPTIONS, CREATED_AT, UPDATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Title,
		m.Body,
		m.QType,
		m.Tags,
		m.Options,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	question.ID = m.ID
	question.CreatedAt = m.CreatedAt
	question.UpdatedAt = m.UpdatedAt
	return nil
}

// GetQuestionByID retrieves a question by its ID.
func (r *sqlxQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT * FROM questions WHERE id = :1`

	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

// GetQuestionsByIDs retrieves all questions whose id is in ids. Missing
// ids are silently absent from the result.
func (r *sqlxQuestionRepository) GetQuestionsByIDs(ctx context.Context, ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT * FROM questions WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	var ms []models.Question
	if err := r.db.SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by ids: %w", err)
	}

	questions := make([]domain.Question, 0, len(ms))
	for i := range ms {
		questions = append(questions, *toDomainQuestion(&ms[i]))
	}
	return questions, nil
}

// ListQuestions returns questions newest-first, narrowed by the given
// filters. Tag and search filters are case-insensitive substring
// matches; the search filter spans title and body.
func (r *sqlxQuestionRepository) ListQuestions(ctx context.Context, filters domain.QuestionFilters) ([]domain.Question, error) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if filters.QType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("qtype = :%d", argIndex))
		args = append(args, filters.QType)
		argIndex++
	}
	if filters.Tag != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(tags) LIKE :%d", argIndex))
		args = append(args, "%"+strings.ToLower(filters.Tag)+"%")
		argIndex++
	}
	if filters.Search != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(LOWER(title) LIKE :%d OR LOWER(body) LIKE :%d)", argIndex, argIndex+1))
		needle := "%" + strings.ToLower(filters.Search) + "%"
		args = append(args, needle, needle)
		argIndex += 2
	}

	query := `SELECT * FROM questions`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var ms []models.Question
	if err := r.db.SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(ms))
	for i := range ms {
		questions = append(questions, *toDomainQuestion(&ms[i]))
	}
	return questions, nil
}
