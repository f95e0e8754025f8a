package models

import "time"

// Category is an activity category students can claim points under.
// OverrideFAID, when set, takes routing priority over a student's primary
// advisor; changing it affects only future submissions. MaxPoints is kept for
// display purposes, but the ledger enforces the fixed PointsCap regardless.
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	MaxPoints    *int      `json:"max_points"`
	OverrideFAID *uint     `json:"override_fa_id"`
	OverrideFA   *User     `gorm:"foreignKey:OverrideFAID" json:"override_fa,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
