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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	if m.Status == "" {
		m.Status = domain.MemberStatusActive
	}
	m.CreatedAt = time.Now().UTC()

	query := `INSERT INTO members (name, email, status, membership_type, created_at)
	          VALUES (?, ?, ?, ?, ?) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		m.Name, m.Email, m.Status, m.MembershipType, m.CreatedAt.Format(timeFormat),
	).Scan(&m.ID)
}

func (r *memberRepository) ListActive(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT id, name, email, status, membership_type, created_at
	          FROM members WHERE status = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, domain.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *memberRepository) FindByNameAndStatus(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error) {
	query := `SELECT id, name, email, status, membership_type, created_at
	          FROM members WHERE name = ? AND status = ? LIMIT 1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, name, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var (
		m              domain.Member
		membershipType sql.NullString
		createdAt      string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Status, &membershipType, &createdAt); err != nil {
		return nil, err
	}
	m.MembershipType = domain.MembershipCategory(membershipType.String)
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &m, nil
}
