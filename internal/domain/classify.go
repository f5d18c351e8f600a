package domain

import "time"

// Classification is the membership category and annual fee derived from an
// applicant's age, plus which countersignatories the category requires.
type Classification struct {
	Category         MembershipCategory
	Fee              float64
	RequiresSponsors bool
	RequiresGuardian bool
}

// AgeOn returns the whole-year age at the reference date, decrementing the
// naive year difference when the reference month/day precedes the birthday.
func AgeOn(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}

// Classify maps a birthdate to a membership category and fee as of the
// reference date. The fee is authoritative here; client-supplied values are
// never trusted. Applicants under 10 are rejected with ErrUnderMinimumAge.
func Classify(birth, on time.Time) (Classification, error) {
	age := AgeOn(birth, on)

	switch {
	case age < 10:
		return Classification{}, ErrUnderMinimumAge
	case age <= 13:
		return Classification{Category: CategoryProbationary, Fee: 30, RequiresGuardian: true}, nil
	case age <= 18:
		return Classification{Category: CategoryJunior, Fee: 30, RequiresSponsors: true}, nil
	case age <= 64:
		return Classification{Category: CategoryRegular, Fee: 50}, nil
	case age >= 65:
		return Classification{Category: CategorySenior, Fee: 40}, nil
	}

	// Unreachable with the ranges above; kept as a defensive fallback
	// matching the regular rate.
	return Classification{Category: CategoryRegular, Fee: 50}, nil
}

// ParseBirthdate parses the YYYY-MM-DD form the submission carries.
func ParseBirthdate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidBirthdate
	}
	return t, nil
}
