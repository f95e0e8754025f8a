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

// ErrCategoryNotFound indicates a category could not be located.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryExists indicates a category name collision on creation. Names
// match case-sensitively and exactly.
var ErrCategoryExists = errors.New("category already exists")

// ErrAdvisorNotFound indicates the referenced user is not a faculty advisor.
var ErrAdvisorNotFound = errors.New("faculty advisor not found")

// CategoryService manages the activity category registry.
type CategoryService interface {
	Create(ctx context.Context, payload dto.CategoryCreateRequest) (dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Resolve(ctx context.Context, name string) (dto.CategoryResponse, error)
	SetOverrideFA(ctx context.Context, categoryID uint, faID *uint) (dto.CategoryResponse, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	users      repository.UserRepository
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewCategoryService constructs a CategoryService instance.
func NewCategoryService(categoryRepo repository.CategoryRepository, userRepo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categories: categoryRepo,
		users:      userRepo,
		validator:  validate,
		logger:     logger.With().Str("component", "category_service").Logger(),
	}
}

func (s *categoryService) Create(ctx context.Context, payload dto.CategoryCreateRequest) (dto.CategoryResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CategoryResponse{}, err
	}

	if _, err := s.categories.GetByName(ctx, payload.Name); err == nil {
		return dto.CategoryResponse{}, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}

	if payload.OverrideFAID != nil {
		if err := s.ensureAdvisor(ctx, *payload.OverrideFAID); err != nil {
			return dto.CategoryResponse{}, err
		}
	}

	category := models.Category{
		Name:         payload.Name,
		MaxPoints:    payload.MaxPoints,
		OverrideFAID: payload.OverrideFAID,
	}

	if err := s.categories.Create(ctx, &category); err != nil {
		return dto.CategoryResponse{}, err
	}

	created, err := s.categories.GetByID(ctx, category.ID)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	s.logger.Info().Uint("category_id", created.ID).Str("name", created.Name).Msg("category created")

	return dto.NewCategoryResponse(created), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCategoryResponseSlice(categories), nil
}

func (s *categoryService) Resolve(ctx context.Context, name string) (dto.CategoryResponse, error) {
	category, err := s.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrCategoryNotFound
		}
		return dto.CategoryResponse{}, err
	}

	return dto.NewCategoryResponse(category), nil
}

// SetOverrideFA is idempotent and only affects future routing; requests
// already assigned keep their advisor.
func (s *categoryService) SetOverrideFA(ctx context.Context, categoryID uint, faID *uint) (dto.CategoryResponse, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrCategoryNotFound
		}
		return dto.CategoryResponse{}, err
	}

	if faID != nil {
		if err := s.ensureAdvisor(ctx, *faID); err != nil {
			return dto.CategoryResponse{}, err
		}
	}

	if err := s.categories.SetOverrideFA(ctx, categoryID, faID); err != nil {
		return dto.CategoryResponse{}, err
	}

	updated, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	s.logger.Info().Uint("category_id", categoryID).Msg("category override advisor updated")

	return dto.NewCategoryResponse(updated), nil
}

func (s *categoryService) ensureAdvisor(ctx context.Context, id uint) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdvisorNotFound
		}
		return err
	}

	if !user.IsAdvisor() {
		return ErrAdvisorNotFound
	}

	return nil
}
