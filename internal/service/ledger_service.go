package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
)

// CapExceededError reports a blocked reservation or commit together with the
// capacity still available in the category, so callers can retry with
// adjusted points.
type CapExceededError struct {
	Category  string
	Requested int
	Remaining int
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("points cap exceeded for category %q: requested %d, %d remaining", e.Category, e.Requested, e.Remaining)
}

// LedgerService enforces the per-student-per-category points cap and exposes
// the cached points summary used by the profile endpoint.
type LedgerService interface {
	Remaining(ctx context.Context, studentID uint, category string, excludeRequestID uint) (int, error)
	Reserve(ctx context.Context, studentID uint, category string, points int, excludeRequestID uint) error
	Summary(ctx context.Context, studentID uint) ([]dto.LedgerEntryResponse, error)
	InvalidateSummary(ctx context.Context, studentID uint)
}

type ledgerService struct {
	ledger   repository.LedgerRepository
	requests repository.RequestRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewLedgerService constructs a LedgerService. The cache client may be nil,
// in which case summaries are always rebuilt from the database.
func NewLedgerService(ledgerRepo repository.LedgerRepository, requestRepo repository.RequestRepository, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) LedgerService {
	return &ledgerService{
		ledger:   ledgerRepo,
		requests: requestRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "ledger_service").Logger(),
	}
}

// Remaining computes cap minus the finalized ledger total minus the points of
// outstanding non-finalized, non-rejected requests in the category. A
// non-zero excludeRequestID leaves that request out of the outstanding sum,
// which is how resubmission replaces its own earlier reservation.
func (s *ledgerService) Remaining(ctx context.Context, studentID uint, category string, excludeRequestID uint) (int, error) {
	finalized, err := s.ledger.FinalizedPoints(ctx, studentID, category)
	if err != nil {
		return 0, err
	}

	outstanding, err := s.requests.SumOutstanding(ctx, studentID, category, excludeRequestID)
	if err != nil {
		return 0, err
	}

	remaining := models.PointsCap - finalized - outstanding
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

func (s *ledgerService) Reserve(ctx context.Context, studentID uint, category string, points int, excludeRequestID uint) error {
	remaining, err := s.Remaining(ctx, studentID, category, excludeRequestID)
	if err != nil {
		return err
	}

	if points > remaining {
		return &CapExceededError{Category: category, Requested: points, Remaining: remaining}
	}

	return nil
}

func (s *ledgerService) Summary(ctx context.Context, studentID uint) ([]dto.LedgerEntryResponse, error) {
	key := summaryCacheKey(studentID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var summary []dto.LedgerEntryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &summary); unmarshalErr == nil {
				return summary, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("points summary cache read failed")
		}
	}

	entries, err := s.ledger.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		remaining := models.PointsCap - entry.Points
		if remaining < 0 {
			remaining = 0
		}
		summary = append(summary, dto.LedgerEntryResponse{
			Category:  entry.Category,
			Points:    entry.Points,
			Remaining: remaining,
		})
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(summary); marshalErr == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("points summary cache write failed")
			}
		}
	}

	return summary, nil
}

func (s *ledgerService) InvalidateSummary(ctx context.Context, studentID uint) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, summaryCacheKey(studentID)).Err(); err != nil {
		s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("points summary cache invalidation failed")
	}
}

func summaryCacheKey(studentID uint) string {
	return fmt.Sprintf("apms:points-summary:%d", studentID)
}
