// Package sqlite implements the record stores over an embedded
// single-file SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/morem6161/bcsme/internal/repository"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

const schema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    status TEXT NOT NULL DEFAULT 'active',
    membership_type TEXT,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS applications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    birthdate TEXT,
    address TEXT,
    city TEXT,
    province_state TEXT,
    postal_code TEXT,
    phone_other TEXT,
    preferred_contact TEXT,
    membership_category TEXT NOT NULL,
    membership_fee REAL NOT NULL,
    areas_of_interest TEXT,
    publish_in_directory INTEGER NOT NULL DEFAULT 0,
    signature_data TEXT,
    signature_date TEXT,
    payment_status TEXT NOT NULL DEFAULT 'pending',
    payment_id TEXT,
    payer_email TEXT,
    payment_date TEXT,
    application_status TEXT NOT NULL DEFAULT 'pending',
    board_approval_status TEXT NOT NULL DEFAULT 'pending',
    board_approval_date TEXT,
    board_notes TEXT,
    junior_sponsor1 TEXT,
    junior_sponsor2 TEXT,
    junior_sponsor1_status TEXT,
    junior_sponsor2_status TEXT,
    probationary_guardian TEXT,
    probationary_guardian_status TEXT,
    sponsor_issues TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS admin_users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    email TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'admin',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_applications_board_review
    ON applications (board_approval_status, payment_status);
`

// Store bundles the record repositories over one SQLite database.
type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.MemberRepository
	repository.AdminUserRepository
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. Each Store is an isolated instance; there is no shared
// global state.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return NewStore(db), nil
}

// NewStore wires the repositories over an existing database handle.
// Used directly by tests that bring their own *sql.DB.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicationRepository: NewApplicationRepository(db),
		MemberRepository:      NewMemberRepository(db),
		AdminUserRepository:   NewAdminUserRepository(db),
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// nullString maps an optional field to its column value.
func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
