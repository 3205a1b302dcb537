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

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email.String,
		IsStaff:   m.IsStaff,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     util.StringToNullString(u.Email),
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	if m == nil {
		return fmt.Errorf("cannot save nil user")
	}
	if m.ID == "" {
		m.ID = util.NewULID()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO users (ID, USERNAME, EMAIL, IS_STAFF, CREATED_AT, UPDATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Username,
		m.Email,
		m.IsStaff,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var m models.User
	query := `SELECT * FROM users WHERE id = :1`

	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetUserByUsername retrieves a user by their username.
func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	query := `SELECT * FROM users WHERE username = :1`

	err := r.db.GetContext(ctx, &m, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return toDomainUser(&m), nil
}

// UserIDsExist reports whether every id in userIDs references an
// existing user.
func (r *sqlxUserRepository) UserIDsExist(ctx context.Context, userIDs []string) (bool, error) {
	if len(userIDs) == 0 {
		return true, nil
	}

	placeholders := make([]string, len(userIDs))
	args := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count == len(userIDs), nil
}
