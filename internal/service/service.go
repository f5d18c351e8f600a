package service

import (
	"context"

	"github.com/morem6161/bcsme/internal/domain"
)

// Submission is the validated input accepted at the public application
// boundary. Category and fee are intentionally absent: both are recomputed
// server-side from the birthdate and never trusted from the client.
type Submission struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Birthdate        string   `json:"birthdate"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	ProvinceState    string   `json:"province_state"`
	PostalCode       string   `json:"postal_code"`
	PhoneOther       string   `json:"phone_other"`
	PreferredContact string   `json:"preferred_contact"`
	AreasOfInterest  []string `json:"areas_of_interest"`
	PublishInDir     bool     `json:"publish_in_directory"`
	SignatureData    string   `json:"signature_data"`
	SignatureDate    string   `json:"signature_date"`
	JuniorSponsor1   string   `json:"junior_sponsor1"`
	JuniorSponsor2   string   `json:"junior_sponsor2"`
	Guardian         string   `json:"probationary_guardian"`
}

// SubmissionResult reports the outcome of a successful submission.
type SubmissionResult struct {
	ApplicationID    int64
	Category         domain.MembershipCategory
	Fee              float64
	HasSponsorIssues bool
}

// SponsorVerification is the result of checking one sponsor name against
// the active members table.
type SponsorVerification struct {
	IsValid bool
	Member  *domain.Member
}

type ApplicationService interface {
	Submit(ctx context.Context, sub *Submission) (*SubmissionResult, error)
	// ConfirmPayment is idempotent per application id; repeated calls do
	// not move the payment date.
	ConfirmPayment(ctx context.Context, id int64, paymentRef, payerEmail string) error
	// Decide records a terminal board decision. Approval promotes the
	// applicant to a member exactly once; deciding an already-decided
	// application fails with domain.ErrAlreadyDecided.
	Decide(ctx context.Context, id int64, decision domain.BoardStatus, notes string) (*domain.Application, error)
	Get(ctx context.Context, id int64) (*domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	ListPendingReview(ctx context.Context) ([]domain.Application, error)
}

type MemberService interface {
	VerifySponsor(ctx context.Context, name string) (*SponsorVerification, error)
	ListActive(ctx context.Context) ([]domain.Member, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.AdminUser, error)
	// EnsureBootstrapAdmin creates the configured admin account when no
	// row with that username exists yet.
	EnsureBootstrapAdmin(ctx context.Context, username, password, email string) error
}

type EmailService interface {
	SendSponsorIssueNotification(ctx context.Context, adminEmail string, app *domain.Application) error
	SendDecisionNotification(ctx context.Context, app *domain.Application) error
	SendPendingReviewDigest(ctx context.Context, adminEmail string, apps []domain.Application) error
}
