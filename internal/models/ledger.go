package models

import "time"

// PointsCap is the fixed maximum number of points a student may accumulate
// per category across finalized requests.
const PointsCap = 10

// PointsLedgerEntry tracks the finalized point total for one (student,
// category) pair. Rows are created lazily on first finalization and only ever
// incremented; rejections never contributed, so nothing is subtracted.
type PointsLedgerEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_ledger_student_category" json:"student_id"`
	Category  string    `gorm:"size:255;not null;uniqueIndex:idx_ledger_student_category" json:"category"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
