package domain

import "errors"

// Workflow errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrAlreadyDecided      = errors.New("application has already been decided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	// ErrPromotionFailed means the approve decision was persisted but the
	// member row could not be created. Promotion can be retried on its own.
	ErrPromotionFailed = errors.New("approval recorded but member creation failed")
)

// Validation errors
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnderMinimumAge      = errors.New("must be at least 10 years old to join")
	ErrSponsorsRequired     = errors.New("junior members must provide two sponsors")
	ErrGuardianRequired     = errors.New("probationary members must provide a parent or guardian")
	ErrEmptyRejectionNotes  = errors.New("rejection requires a reason in the notes")
	ErrInvalidBirthdate     = errors.New("invalid birthdate")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
)

// IsValidation reports whether err is a caller input problem rather than a
// workflow or storage failure.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrUnderMinimumAge),
		errors.Is(err, ErrSponsorsRequired),
		errors.Is(err, ErrGuardianRequired),
		errors.Is(err, ErrEmptyRejectionNotes),
		errors.Is(err, ErrInvalidBirthdate),
		errors.Is(err, ErrInvalidDecision):
		return true
	}
	return false
}
