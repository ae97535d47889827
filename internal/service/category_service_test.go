package service

import (
	"context"
	"strings"
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	userID := uuid.New()

	color := "#FF5733"
	category, err := svc.CreateCategory(context.Background(), userID, "Groceries", domain.CategoryTypeExpense, &color)

	require.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, domain.CategoryTypeExpense, category.Type)
	assert.Equal(t, userID, category.UserID)
	require.NotNil(t, category.Color)
	assert.Equal(t, "#FF5733", *category.Color)
}

func TestCategoryService_CreateCategory_TrimsName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)

	category, err := svc.CreateCategory(context.Background(), uuid.New(), "  Salary  ", domain.CategoryTypeIncome, nil)

	require.NoError(t, err)
	assert.Equal(t, "Salary", category.Name)
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	userID := uuid.New()
	badColor := "red"

	tests := []struct {
		name         string
		categoryName string
		categoryType domain.CategoryType
		color        *string
		wantErr      error
	}{
		{"empty name", "", domain.CategoryTypeExpense, nil, domain.ErrNameRequired},
		{"blank name", "   ", domain.CategoryTypeExpense, nil, domain.ErrNameRequired},
		{"name too long", strings.Repeat("a", 51), domain.CategoryTypeExpense, nil, domain.ErrNameTooLong},
		{"unknown type", "Rent", "savings", nil, domain.ErrInvalidCategoryType},
		{"bad color", "Rent", domain.CategoryTypeExpense, &badColor, domain.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCategory(context.Background(), userID, tt.categoryName, tt.categoryType, tt.color)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_GetCategories_FiltersByType(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Salary", Type: domain.CategoryTypeIncome})
	categoryRepo.AddCategory(&domain.Category{ID: 2, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})
	categoryRepo.AddCategory(&domain.Category{ID: 3, UserID: userID, Name: "Food", Type: domain.CategoryTypeExpense})

	expense := domain.CategoryTypeExpense
	categories, err := svc.GetCategories(context.Background(), userID, &expense)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Rent", categories[0].Name)
	assert.Equal(t, "Food", categories[1].Name)
}

func TestCategoryService_GetCategories_IgnoresUnknownFilter(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Salary", Type: domain.CategoryTypeIncome})
	categoryRepo.AddCategory(&domain.Category{ID: 2, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})

	unknown := domain.CategoryType("savings")
	categories, err := svc.GetCategories(context.Background(), userID, &unknown)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_GetCategories_ScopedToUser(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	alice := uuid.New()
	bob := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: alice, Name: "Salary", Type: domain.CategoryTypeIncome})
	categoryRepo.AddCategory(&domain.Category{ID: 2, UserID: bob, Name: "Rent", Type: domain.CategoryTypeExpense})

	categories, err := svc.GetCategories(context.Background(), alice, nil)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Salary", categories[0].Name)
}

func TestCategoryService_GetCategoryByID_NotOwned(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	owner := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: owner, Name: "Rent", Type: domain.CategoryTypeExpense})

	_, err := svc.GetCategoryByID(context.Background(), uuid.New(), 1)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})

	color := "#00FF00"
	updated, err := svc.UpdateCategory(context.Background(), userID, 1, "Housing", domain.CategoryTypeExpense, &color)

	require.NoError(t, err)
	assert.Equal(t, "Housing", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#00FF00", *updated.Color)
}

func TestCategoryService_DeleteCategory_NotOwned(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	svc := NewCategoryService(categoryRepo)
	owner := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: owner, Name: "Rent", Type: domain.CategoryTypeExpense})

	err := svc.DeleteCategory(context.Background(), uuid.New(), 1)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Len(t, categoryRepo.Categories, 1)
}
