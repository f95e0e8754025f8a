package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

func newCategoryFixture() (CategoryService, *memoryCategoryRepo, *memoryUserRepo) {
	users := newMemoryUserRepo(
		models.User{ID: 1, Name: "Asha Nair", Email: "asha@example.edu", Role: models.RoleStudent},
		models.User{ID: 2, Name: "Prof. Menon", Email: "menon@example.edu", Role: models.RoleFA},
	)
	categories := newMemoryCategoryRepo(models.Category{ID: 1, Name: "sports"})
	validate := validator.New(validator.WithRequiredStructEnabled())

	return NewCategoryService(categories, users, validate, testLogger()), categories, users
}

func TestCategoryCreateSuccess(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	max := 8
	created, err := svc.Create(context.Background(), dto.CategoryCreateRequest{Name: "cultural", MaxPoints: &max})
	require.NoError(t, err)
	require.Equal(t, "cultural", created.Name)
	require.NotNil(t, created.MaxPoints)
	require.Equal(t, 8, *created.MaxPoints)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	_, err := svc.Create(context.Background(), dto.CategoryCreateRequest{Name: "sports"})
	require.ErrorIs(t, err, ErrCategoryExists)
}

func TestCategoryCreateRejectsNonAdvisorOverride(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	studentID := uint(1)
	_, err := svc.Create(context.Background(), dto.CategoryCreateRequest{Name: "cultural", OverrideFAID: &studentID})
	require.ErrorIs(t, err, ErrAdvisorNotFound)
}

func TestCategorySetOverrideFA(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	faID := uint(2)
	updated, err := svc.SetOverrideFA(context.Background(), 1, &faID)
	require.NoError(t, err)
	require.NotNil(t, updated.OverrideFAID)
	require.Equal(t, faID, *updated.OverrideFAID)

	// Re-applying the same override is a no-op, and nil clears it.
	updated, err = svc.SetOverrideFA(context.Background(), 1, &faID)
	require.NoError(t, err)
	require.NotNil(t, updated.OverrideFAID)

	updated, err = svc.SetOverrideFA(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Nil(t, updated.OverrideFAID)
}

func TestCategorySetOverrideFAUnknownCategory(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	faID := uint(2)
	_, err := svc.SetOverrideFA(context.Background(), 42, &faID)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryResolve(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	resolved, err := svc.Resolve(context.Background(), "sports")
	require.NoError(t, err)
	require.Equal(t, uint(1), resolved.ID)

	_, err = svc.Resolve(context.Background(), "esports")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
