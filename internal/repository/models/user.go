package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
type User struct {
	ID        string         `db:"ID"`       // ULID
	Username  string         `db:"USERNAME"` // Unique login name
	Email     sql.NullString `db:"EMAIL"`
	IsStaff   bool           `db:"IS_STAFF"`
	CreatedAt time.Time      `db:"CREATED_AT"`
	UpdatedAt time.Time      `db:"UPDATED_AT"`
}
