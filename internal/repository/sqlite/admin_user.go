package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/repository"
)

type adminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	if u.Role == "" {
		u.Role = "admin"
	}
	u.CreatedAt = time.Now().UTC()

	query := `INSERT INTO admin_users (username, password_hash, email, role, created_at)
	          VALUES (?, ?, ?, ?, ?) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		u.Username, u.PasswordHash, u.Email, u.Role, u.CreatedAt.Format(timeFormat),
	).Scan(&u.ID)
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var (
		u         domain.AdminUser
		createdAt string
	)
	query := `SELECT id, username, password_hash, email, role, created_at
	          FROM admin_users WHERE username = ?`
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &u, nil
}
