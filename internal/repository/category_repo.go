package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

// CategoryRepository defines data operations for activity categories.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (models.Category, error)
	GetByName(ctx context.Context, name string) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	SetOverrideFA(ctx context.Context, id uint, faID *uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository instantiates the repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Category{}).Preload("OverrideFA")
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	if err := r.baseQuery(ctx).First(&category, id).Error; err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (models.Category, error) {
	var category models.Category
	if err := r.baseQuery(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.baseQuery(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) SetOverrideFA(ctx context.Context, id uint, faID *uint) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Update("override_fa_id", faID).Error
}
