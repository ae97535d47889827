package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL.
// The (user_id, month, category_id) uniqueness lives in the schema, so a
// racing duplicate insert is rejected there rather than overwritten.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Create creates a new budget cap
func (r *BudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	query := `INSERT INTO budgets (user_id, category_id, month, amount)
	          VALUES ($1, $2, $3, $4::numeric)
	          RETURNING id, user_id, category_id, month, amount::text, created_at, updated_at`

	created, err := scanBudget(r.pool.QueryRow(ctx, query,
		budget.UserID, budget.CategoryID, budget.Month, budget.Amount.String()))
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrBudgetExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves one of the user's budgets by id
func (r *BudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	query := `SELECT id, user_id, category_id, month, amount::text, created_at, updated_at
	          FROM budgets WHERE user_id = $1 AND id = $2`

	budget, err := scanBudget(r.pool.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAllByUser retrieves all of the user's budgets
func (r *BudgetRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Budget, error) {
	query := `SELECT id, user_id, category_id, month, amount::text, created_at, updated_at
	          FROM budgets WHERE user_id = $1
	          ORDER BY month DESC, id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []*domain.Budget{}
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Update updates one of the user's budgets
func (r *BudgetRepository) Update(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	query := `UPDATE budgets
	          SET category_id = $3, month = $4, amount = $5::numeric, updated_at = now()
	          WHERE user_id = $1 AND id = $2
	          RETURNING id, user_id, category_id, month, amount::text, created_at, updated_at`

	updated, err := scanBudget(r.pool.QueryRow(ctx, query,
		budget.UserID, budget.ID, budget.CategoryID, budget.Month, budget.Amount.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		if isPgUniqueViolation(err) {
			return nil, domain.ErrBudgetExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes one of the user's budgets
func (r *BudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	budget := &domain.Budget{}
	var amount string
	err := row.Scan(
		&budget.ID,
		&budget.UserID,
		&budget.CategoryID,
		&budget.Month,
		&amount,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	budget.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount: %w", err)
	}
	return budget, nil
}
