package models

import "time"

// Role identifies the position a user holds in the approval workflow.
type Role string

const (
	// RoleStudent submits activity claims and resubmits them when more info is requested.
	RoleStudent Role = "student"
	// RoleFA is a faculty advisor performing first-pass review.
	RoleFA Role = "fa"
	// RoleAdmin finalizes FA-approved requests and manages routing.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known workflow roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFA, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents a portal account. PrimaryFAID is only meaningful for students
// and acts as the routing fallback when a category carries no override advisor.
type User struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Name        string              `gorm:"size:255;not null" json:"name"`
	Email       string              `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role        Role                `gorm:"size:16;not null;index" json:"role"`
	PrimaryFAID *uint               `json:"primary_fa_id"`
	PrimaryFA   *User               `gorm:"foreignKey:PrimaryFAID" json:"primary_fa,omitempty"`
	Ledger      []PointsLedgerEntry `gorm:"foreignKey:StudentID" json:"ledger,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// IsAdvisor reports whether the user can be assigned as a reviewer.
func (u User) IsAdvisor() bool {
	return u.Role == RoleFA
}
