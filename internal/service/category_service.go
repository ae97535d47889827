package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// colorPattern matches a hex color like "#FF5733"
var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new category owned by userID
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string, categoryType domain.CategoryType, color *string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !categoryType.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}
	if color != nil && !colorPattern.MatchString(*color) {
		return nil, domain.ErrInvalidColor
	}

	category := &domain.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
		Color:  color,
	}

	return s.categoryRepo.Create(ctx, category)
}

// GetCategories retrieves all categories owned by userID, optionally
// filtered by type. The full set is always returned, unpaginated.
func (s *CategoryService) GetCategories(ctx context.Context, userID uuid.UUID, typeFilter *domain.CategoryType) ([]*domain.Category, error) {
	if typeFilter != nil && !typeFilter.Valid() {
		// Unknown type filters are ignored, matching the original behavior
		typeFilter = nil
	}
	return s.categoryRepo.GetAllByUser(ctx, userID, typeFilter)
}

// GetCategoryByID retrieves one of userID's categories
func (s *CategoryService) GetCategoryByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, userID, id)
}

// UpdateCategory updates one of userID's categories
func (s *CategoryService) UpdateCategory(ctx context.Context, userID uuid.UUID, id int32, name string, categoryType domain.CategoryType, color *string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !categoryType.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}
	if color != nil && !colorPattern.MatchString(*color) {
		return nil, domain.ErrInvalidColor
	}

	category := &domain.Category{
		ID:     id,
		UserID: userID,
		Name:   name,
		Type:   categoryType,
		Color:  color,
	}

	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory deletes one of userID's categories. Entries and budgets
// referencing the category are removed by the storage cascade.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID uuid.UUID, id int32) error {
	return s.categoryRepo.Delete(ctx, userID, id)
}
