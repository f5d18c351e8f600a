package jobs

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
