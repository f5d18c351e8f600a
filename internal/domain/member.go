package domain

import "time"

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Member is a full member of the society. Rows are created as a side
// effect of board approval and are never updated in the current scope.
type Member struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Status         MemberStatus       `json:"status"`
	MembershipType MembershipCategory `json:"membership_type"`
	CreatedAt      time.Time          `json:"created_at"`
}
