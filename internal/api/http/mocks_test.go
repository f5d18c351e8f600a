package http

import (
	"context"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, sub *service.Submission) (*service.SubmissionResult, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionResult), args.Error(1)
}

func (m *MockApplicationService) ConfirmPayment(ctx context.Context, id int64, paymentRef, payerEmail string) error {
	args := m.Called(ctx, id, paymentRef, payerEmail)
	return args.Error(0)
}

func (m *MockApplicationService) Decide(ctx context.Context, id int64, decision domain.BoardStatus, notes string) (*domain.Application, error) {
	args := m.Called(ctx, id, decision, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationService) ListAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationService) ListPendingReview(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) VerifySponsor(ctx context.Context, name string) (*service.SponsorVerification, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SponsorVerification), args.Error(1)
}

func (m *MockMemberService) ListActive(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAuthService) EnsureBootstrapAdmin(ctx context.Context, username, password, email string) error {
	args := m.Called(ctx, username, password, email)
	return args.Error(0)
}
