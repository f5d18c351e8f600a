package service

import (
	"context"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListPendingReview(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ConfirmPayment(ctx context.Context, id int64, paymentID, payerEmail string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, id, paymentID, payerEmail, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) RecordDecision(ctx context.Context, id int64, status domain.BoardStatus, notes string, decidedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, status, notes, decidedAt)
	return args.Bool(0), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) ListActive(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByNameAndStatus(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error) {
	args := m.Called(ctx, name, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockAdminUserRepo struct {
	mock.Mock
}

func (m *MockAdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockAdminUserRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSponsorIssueNotification(ctx context.Context, adminEmail string, app *domain.Application) error {
	args := m.Called(ctx, adminEmail, app)
	return args.Error(0)
}

func (m *MockEmailService) SendDecisionNotification(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockEmailService) SendPendingReviewDigest(ctx context.Context, adminEmail string, apps []domain.Application) error {
	args := m.Called(ctx, adminEmail, apps)
	return args.Error(0)
}
