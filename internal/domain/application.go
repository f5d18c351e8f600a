package domain

import "time"

type MembershipCategory string

const (
	CategoryProbationary MembershipCategory = "probationary"
	CategoryJunior       MembershipCategory = "junior"
	CategoryRegular      MembershipCategory = "regular"
	CategorySenior       MembershipCategory = "senior"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type ApplicationStatus string

const (
	ApplicationStatusPending          ApplicationStatus = "pending"
	ApplicationStatusAwaitingApproval ApplicationStatus = "awaiting_approval"
)

type BoardStatus string

const (
	BoardStatusPending  BoardStatus = "pending"
	BoardStatusApproved BoardStatus = "approved"
	BoardStatusRejected BoardStatus = "rejected"
)

type SponsorStatus string

const (
	SponsorStatusPending  SponsorStatus = "pending"
	SponsorStatusVerified SponsorStatus = "verified"
)

// Application is a membership application moving through the
// submission → payment → board decision workflow.
type Application struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Birthdate        string             `json:"birthdate"` // YYYY-MM-DD
	Address          string             `json:"address"`
	City             string             `json:"city"`
	ProvinceState    string             `json:"province_state"`
	PostalCode       string             `json:"postal_code"`
	PhoneOther       string             `json:"phone_other"`
	PreferredContact string             `json:"preferred_contact"`
	Category         MembershipCategory `json:"membership_category"`
	Fee              float64            `json:"membership_fee"`
	AreasOfInterest  []string           `json:"areas_of_interest"`
	PublishInDir     bool               `json:"publish_in_directory"`
	SignatureData    string             `json:"signature_data,omitempty"`
	SignatureDate    string             `json:"signature_date,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentID     *string       `json:"payment_id,omitempty"`
	PayerEmail    *string       `json:"payer_email,omitempty"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`

	ApplicationStatus ApplicationStatus `json:"application_status"`
	BoardStatus       BoardStatus       `json:"board_approval_status"`
	BoardDecisionDate *time.Time        `json:"board_approval_date,omitempty"`
	BoardNotes        *string           `json:"board_notes,omitempty"`

	JuniorSponsor1       *string        `json:"junior_sponsor1,omitempty"`
	JuniorSponsor2       *string        `json:"junior_sponsor2,omitempty"`
	JuniorSponsor1Status *SponsorStatus `json:"junior_sponsor1_status,omitempty"`
	JuniorSponsor2Status *SponsorStatus `json:"junior_sponsor2_status,omitempty"`
	Guardian             *string        `json:"probationary_guardian,omitempty"`
	GuardianStatus       *SponsorStatus `json:"probationary_guardian_status,omitempty"`
	SponsorIssues        *string        `json:"sponsor_issues,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Decided reports whether the board has already acted on the application.
func (a *Application) Decided() bool {
	return a.BoardStatus != BoardStatusPending
}
