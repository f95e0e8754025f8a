package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
)

// ErrUserNotFound indicates a user could not be located.
var ErrUserNotFound = errors.New("user not found")

// ErrNotAStudent indicates a primary advisor assignment targeted a non-student.
var ErrNotAStudent = errors.New("user is not a student")

// DirectoryService exposes the user and advisor directory consumed by routing
// and administration.
type DirectoryService interface {
	Profile(ctx context.Context, userID uint) (dto.ProfileResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	ListAdvisors(ctx context.Context) ([]dto.UserResponse, error)
	AssignPrimaryFA(ctx context.Context, studentID uint, faID *uint) (dto.UserResponse, error)
}

type directoryService struct {
	users     repository.UserRepository
	ledger    LedgerService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDirectoryService constructs a DirectoryService instance.
func NewDirectoryService(userRepo repository.UserRepository, ledger LedgerService, validate *validator.Validate, logger zerolog.Logger) DirectoryService {
	return &directoryService{
		users:     userRepo,
		ledger:    ledger,
		validator: validate,
		logger:    logger.With().Str("component", "directory_service").Logger(),
	}
}

func (s *directoryService) Profile(ctx context.Context, userID uint) (dto.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, ErrUserNotFound
		}
		return dto.ProfileResponse{}, err
	}

	profile := dto.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		PrimaryFAID: user.PrimaryFAID,
	}

	if user.Role == models.RoleStudent {
		points, err := s.ledger.Summary(ctx, user.ID)
		if err != nil {
			return dto.ProfileResponse{}, err
		}
		profile.Points = points
	}

	return profile, nil
}

func (s *directoryService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponseSlice(users), nil
}

func (s *directoryService) ListAdvisors(ctx context.Context) ([]dto.UserResponse, error) {
	role := models.RoleFA
	advisors, err := s.users.List(ctx, repository.UserFilter{Role: &role})
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponseSlice(advisors), nil
}

// AssignPrimaryFA durably associates an advisor with a student; a nil id
// clears the association. Requests already routed keep their advisor.
func (s *directoryService) AssignPrimaryFA(ctx context.Context, studentID uint, faID *uint) (dto.UserResponse, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if student.Role != models.RoleStudent {
		return dto.UserResponse{}, ErrNotAStudent
	}

	if faID != nil {
		advisor, err := s.users.GetByID(ctx, *faID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.UserResponse{}, ErrAdvisorNotFound
			}
			return dto.UserResponse{}, err
		}
		if !advisor.IsAdvisor() {
			return dto.UserResponse{}, ErrAdvisorNotFound
		}
	}

	student.PrimaryFAID = faID
	if err := s.users.Update(ctx, &student); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("student_id", studentID).Msg("primary advisor assignment updated")

	return dto.NewUserResponse(student), nil
}
