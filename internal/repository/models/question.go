package models

import (
	"database/sql"
	"time"
)

// Question represents a row in the questions table. Tags and options
// are JSON arrays stored in CLOB columns.
type Question struct {
	ID        string         `db:"ID"` // ULID
	Title     string         `db:"TITLE"`
	Body      sql.NullString `db:"BODY"`
	QType     string         `db:"QTYPE"`
	Tags      StringSlice    `db:"TAGS"`
	Options   StringSlice    `db:"OPTIONS"`
	CreatedAt time.Time      `db:"CREATED_AT"`
	UpdatedAt time.Time      `db:"UPDATED_AT"`
}
