package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

// LedgerRepository reads finalized point totals. Writes happen exclusively
// inside the request transition transaction; see RequestRepository.Transition.
type LedgerRepository interface {
	FinalizedPoints(ctx context.Context, studentID uint, category string) (int, error)
	ListForStudent(ctx context.Context, studentID uint) ([]models.PointsLedgerEntry, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository instantiates the repository.
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) FinalizedPoints(ctx context.Context, studentID uint, category string) (int, error) {
	var entry models.PointsLedgerEntry
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("category = ?", category).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return entry.Points, nil
}

func (r *ledgerRepository) ListForStudent(ctx context.Context, studentID uint) ([]models.PointsLedgerEntry, error) {
	var entries []models.PointsLedgerEntry
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("category ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
