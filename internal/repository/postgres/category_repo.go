package postgres

import (
	"context"
	"errors"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL.
// Every query keys on user_id, so acting on another user's category is
// indistinguishable from a missing one.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO categories (user_id, name, type, color)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, user_id, name, type, color, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, category.UserID, category.Name, string(category.Type), category.Color)
	return scanCategory(row)
}

// GetByID retrieves one of the user's categories by id
func (r *CategoryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	query := `SELECT id, user_id, name, type, color, created_at, updated_at
	          FROM categories WHERE user_id = $1 AND id = $2`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAllByUser retrieves all of the user's categories, optionally filtered by type
func (r *CategoryRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, typeFilter *domain.CategoryType) ([]*domain.Category, error) {
	query := `SELECT id, user_id, name, type, color, created_at, updated_at
	          FROM categories WHERE user_id = $1`
	args := []any{userID}

	if typeFilter != nil {
		query += ` AND type = $2`
		args = append(args, string(*typeFilter))
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update updates one of the user's categories
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `UPDATE categories
	          SET name = $3, type = $4, color = $5, updated_at = now()
	          WHERE user_id = $1 AND id = $2
	          RETURNING id, user_id, name, type, color, created_at, updated_at`

	updated, err := scanCategory(r.pool.QueryRow(ctx, query,
		category.UserID, category.ID, category.Name, string(category.Type), category.Color))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes one of the user's categories; entries and budgets
// referencing it are deleted by the FK cascade
func (r *CategoryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	category := &domain.Category{}
	var categoryType string
	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&categoryType,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	category.Type = domain.CategoryType(categoryType)
	return category, nil
}
