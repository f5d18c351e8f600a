package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/logger"
	"github.com/morem6161/bcsme/internal/repository"
)

type applicationService struct {
	appRepo    repository.ApplicationRepository
	memberRepo repository.MemberRepository
	memberSvc  MemberService
	emailSvc   EmailService
	adminEmail string
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	memberRepo repository.MemberRepository,
	memberSvc MemberService,
	emailSvc EmailService,
	adminEmail string,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		memberRepo: memberRepo,
		memberSvc:  memberSvc,
		emailSvc:   emailSvc,
		adminEmail: adminEmail,
	}
}

func (s *applicationService) Submit(ctx context.Context, sub *Submission) (*SubmissionResult, error) {
	if err := requireFields(sub); err != nil {
		return nil, err
	}

	birth, err := domain.ParseBirthdate(sub.Birthdate)
	if err != nil {
		return nil, err
	}

	class, err := domain.Classify(birth, time.Now())
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		Name:             strings.TrimSpace(sub.Name),
		Email:            strings.TrimSpace(sub.Email),
		Birthdate:        sub.Birthdate,
		Address:          sub.Address,
		City:             sub.City,
		ProvinceState:    sub.ProvinceState,
		PostalCode:       sub.PostalCode,
		PhoneOther:       sub.PhoneOther,
		PreferredContact: sub.PreferredContact,
		Category:         class.Category,
		Fee:              class.Fee,
		AreasOfInterest:  sub.AreasOfInterest,
		PublishInDir:     sub.PublishInDir,
		SignatureData:    sub.SignatureData,
		SignatureDate:    sub.SignatureDate,
	}

	var issues []string
	switch {
	case class.RequiresSponsors:
		sponsor1 := strings.TrimSpace(sub.JuniorSponsor1)
		sponsor2 := strings.TrimSpace(sub.JuniorSponsor2)
		if sponsor1 == "" || sponsor2 == "" {
			return nil, domain.ErrSponsorsRequired
		}
		app.JuniorSponsor1 = &sponsor1
		app.JuniorSponsor2 = &sponsor2

		st1, err := s.verify(ctx, 1, sponsor1, &issues)
		if err != nil {
			return nil, err
		}
		st2, err := s.verify(ctx, 2, sponsor2, &issues)
		if err != nil {
			return nil, err
		}
		app.JuniorSponsor1Status = &st1
		app.JuniorSponsor2Status = &st2

	case class.RequiresGuardian:
		guardian := strings.TrimSpace(sub.Guardian)
		if guardian == "" {
			return nil, domain.ErrGuardianRequired
		}
		app.Guardian = &guardian
		pending := domain.SponsorStatusPending
		app.GuardianStatus = &pending
	}

	if len(issues) > 0 {
		joined := strings.Join(issues, "; ")
		app.SponsorIssues = &joined
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	// Sponsor problems flag the application for board attention; they never
	// reject it. The admin alert is best-effort and must not delay or fail
	// the submission.
	if len(issues) > 0 && s.emailSvc != nil && s.adminEmail != "" {
		go func(app domain.Application) {
			if err := s.emailSvc.SendSponsorIssueNotification(context.Background(), s.adminEmail, &app); err != nil {
				logger.Error("Failed to send sponsor issue notification", "application_id", app.ID, "error", err)
			}
		}(*app)
	}

	return &SubmissionResult{
		ApplicationID:    app.ID,
		Category:         app.Category,
		Fee:              app.Fee,
		HasSponsorIssues: len(issues) > 0,
	}, nil
}

// verify resolves one sponsor slot and appends a human-readable issue when
// the name cannot be matched to an active member.
func (s *applicationService) verify(ctx context.Context, slot int, name string, issues *[]string) (domain.SponsorStatus, error) {
	res, err := s.memberSvc.VerifySponsor(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to verify sponsor %d: %w", slot, err)
	}
	if !res.IsValid {
		*issues = append(*issues, fmt.Sprintf("Sponsor %d %q not found in member database", slot, name))
		return domain.SponsorStatusPending, nil
	}
	return domain.SponsorStatusVerified, nil
}

func (s *applicationService) ConfirmPayment(ctx context.Context, id int64, paymentRef, payerEmail string) error {
	ok, err := s.appRepo.ConfirmPayment(ctx, id, paymentRef, payerEmail, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if ok {
		return nil
	}

	// Nothing transitioned: either the id is unknown or the payment was
	// already confirmed. The second confirmation is a no-op success.
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app.PaymentStatus == domain.PaymentStatusCompleted {
		logger.Info("Ignoring repeated payment confirmation", "application_id", id)
		return nil
	}
	return fmt.Errorf("failed to update payment for application %d", id)
}

func (s *applicationService) Decide(ctx context.Context, id int64, decision domain.BoardStatus, notes string) (*domain.Application, error) {
	if decision != domain.BoardStatusApproved && decision != domain.BoardStatusRejected {
		return nil, domain.ErrInvalidDecision
	}
	notes = strings.TrimSpace(notes)
	if decision == domain.BoardStatusRejected && notes == "" {
		return nil, domain.ErrEmptyRejectionNotes
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Decided() {
		return nil, domain.ErrAlreadyDecided
	}

	decidedAt := time.Now()
	ok, err := s.appRepo.RecordDecision(ctx, id, decision, notes, decidedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record board decision: %w", err)
	}
	if !ok {
		// The row exists but was no longer pending: another decision won.
		return nil, domain.ErrAlreadyDecided
	}

	app.BoardStatus = decision
	app.BoardDecisionDate = &decidedAt
	app.BoardNotes = &notes

	if decision == domain.BoardStatusApproved {
		member := &domain.Member{
			Name:           app.Name,
			Email:          app.Email,
			Status:         domain.MemberStatusActive,
			MembershipType: app.Category,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			// The decision is already durable; only the promotion half
			// failed. Surface that distinctly so an operator can retry
			// member creation alone.
			return nil, fmt.Errorf("%w: %v", domain.ErrPromotionFailed, err)
		}
	}

	if s.emailSvc != nil {
		go func(app domain.Application) {
			if err := s.emailSvc.SendDecisionNotification(context.Background(), &app); err != nil {
				logger.Error("Failed to send decision notification", "application_id", app.ID, "error", err)
			}
		}(*app)
	}

	return app, nil
}

func (s *applicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	return s.appRepo.GetByID(ctx, id)
}

func (s *applicationService) ListAll(ctx context.Context) ([]domain.Application, error) {
	return s.appRepo.List(ctx)
}

func (s *applicationService) ListPendingReview(ctx context.Context) ([]domain.Application, error) {
	return s.appRepo.ListPendingReview(ctx)
}

func requireFields(sub *Submission) error {
	required := []struct {
		name, value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"birthdate", sub.Birthdate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, f.name)
		}
	}
	return nil
}
