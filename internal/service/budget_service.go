package service

import (
	"context"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget cap business logic
type BudgetService struct {
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudgetInput holds the input for creating or updating a budget
type CreateBudgetInput struct {
	CategoryID *int32
	Month      time.Time
	Amount     decimal.Decimal
}

// CreateBudget creates a new budget cap for userID. The month is normalized
// to the first day; a colliding (user, month, category) triple is rejected
// by the storage uniqueness constraint, never overwritten.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, input CreateBudgetInput) (*domain.Budget, error) {
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Month:      util.NormalizeMonth(input.Month),
		Amount:     input.Amount,
	}

	return s.budgetRepo.Create(ctx, budget)
}

// GetBudgets retrieves all of userID's budgets, unfiltered and unpaginated
func (s *BudgetService) GetBudgets(ctx context.Context, userID uuid.UUID) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByUser(ctx, userID)
}

// GetBudgetByID retrieves one of userID's budgets
func (s *BudgetService) GetBudgetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(ctx, userID, id)
}

// UpdateBudget updates one of userID's budgets
func (s *BudgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, id int32, input CreateBudgetInput) (*domain.Budget, error) {
	if _, err := s.budgetRepo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		ID:         id,
		UserID:     userID,
		CategoryID: input.CategoryID,
		Month:      util.NormalizeMonth(input.Month),
		Amount:     input.Amount,
	}

	return s.budgetRepo.Update(ctx, budget)
}

// DeleteBudget deletes one of userID's budgets
func (s *BudgetService) DeleteBudget(ctx context.Context, userID uuid.UUID, id int32) error {
	return s.budgetRepo.Delete(ctx, userID, id)
}

// validate checks amount precision and that a referenced category exists,
// belongs to the caller, and is an expense category.
func (s *BudgetService) validate(ctx context.Context, userID uuid.UUID, input CreateBudgetInput) error {
	if input.Amount.Exponent() < -2 {
		return domain.ErrInvalidAmount
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, userID, *input.CategoryID)
		if err != nil {
			return err
		}
		if category.Type != domain.CategoryTypeExpense {
			return domain.ErrCategoryTypeMismatch
		}
	}
	return nil
}
