package repository

import (
	"context"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	// ListPendingReview returns applications awaiting board action: board
	// status pending AND payment completed. Unpaid applications never
	// surface here.
	ListPendingReview(ctx context.Context) ([]domain.Application, error)
	// ConfirmPayment transitions payment pending→completed and the
	// application to awaiting_approval. Returns false when no row
	// transitioned (already confirmed, or unknown id).
	ConfirmPayment(ctx context.Context, id int64, paymentID, payerEmail string, paidAt time.Time) (bool, error)
	// RecordDecision sets the terminal board status, date and notes, but
	// only while the board status is still pending. Returns false when no
	// row transitioned.
	RecordDecision(ctx context.Context, id int64, status domain.BoardStatus, notes string, decidedAt time.Time) (bool, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	ListActive(ctx context.Context) ([]domain.Member, error)
	// FindByNameAndStatus performs an exact, case-sensitive lookup; it is
	// the sponsor verification primitive.
	FindByNameAndStatus(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error)
}

type AdminUserRepository interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}
