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

// EntryRepository implements domain.EntryRepository using PostgreSQL. The
// backing table (incomes or expenses) is fixed at construction; both tables
// have an identical shape.
type EntryRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewEntryRepository creates a new EntryRepository for the given kind
func NewEntryRepository(pool *pgxpool.Pool, kind domain.EntryKind) *EntryRepository {
	table := "expenses"
	if kind == domain.EntryKindIncome {
		table = "incomes"
	}
	return &EntryRepository{pool: pool, table: table}
}

// Create creates a new entry
func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, category_id, amount, date, notes)
	          VALUES ($1, $2, $3::numeric, $4, $5)
	          RETURNING id, user_id, category_id, amount::text, date, notes, created_at, updated_at`, r.table)

	row := r.pool.QueryRow(ctx, query,
		entry.UserID, entry.CategoryID, entry.Amount.String(), entry.Date, entry.Notes)
	return scanEntry(row)
}

// GetByID retrieves one of the user's entries by id
func (r *EntryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Entry, error) {
	query := fmt.Sprintf(`SELECT id, user_id, category_id, amount::text, date, notes, created_at, updated_at
	          FROM %s WHERE user_id = $1 AND id = $2`, r.table)

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// GetAllByUser retrieves the user's entries with optional filters. Amount
// bounds are inclusive; the default ordering is date descending.
func (r *EntryRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, filter *domain.EntryFilter) ([]*domain.Entry, error) {
	query := fmt.Sprintf(`SELECT id, user_id, category_id, amount::text, date, notes, created_at, updated_at
	          FROM %s WHERE user_id = $1`, r.table)
	args := []any{userID}

	ordering := domain.OrderByDateDesc
	if filter != nil {
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			query += fmt.Sprintf(` AND category_id = $%d`, len(args))
		}
		if filter.MinAmount != nil {
			args = append(args, filter.MinAmount.String())
			query += fmt.Sprintf(` AND amount >= $%d::numeric`, len(args))
		}
		if filter.MaxAmount != nil {
			args = append(args, filter.MaxAmount.String())
			query += fmt.Sprintf(` AND amount <= $%d::numeric`, len(args))
		}
		if filter.Ordering != "" {
			ordering = filter.Ordering
		}
	}
	query += ` ORDER BY ` + orderClause(ordering)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetAllWithCategory retrieves all of the user's entries joined with the
// linked category's name and color, for the merged transaction feed.
func (r *EntryRepository) GetAllWithCategory(ctx context.Context, userID uuid.UUID) ([]*domain.EntryWithCategory, error) {
	query := fmt.Sprintf(`SELECT e.id, e.user_id, e.category_id, e.amount::text, e.date, e.notes,
	                 e.created_at, e.updated_at, c.name, c.color
	          FROM %s e
	          LEFT JOIN categories c ON c.id = e.category_id
	          WHERE e.user_id = $1
	          ORDER BY e.id`, r.table)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.EntryWithCategory{}
	for rows.Next() {
		e := &domain.EntryWithCategory{}
		var amount string
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CategoryID,
			&amount,
			&e.Date,
			&e.Notes,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.CategoryName,
			&e.CategoryColor,
		)
		if err != nil {
			return nil, err
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid stored amount: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update updates one of the user's entries
func (r *EntryRepository) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	query := fmt.Sprintf(`UPDATE %s
	          SET category_id = $3, amount = $4::numeric, date = $5, notes = $6, updated_at = now()
	          WHERE user_id = $1 AND id = $2
	          RETURNING id, user_id, category_id, amount::text, date, notes, created_at, updated_at`, r.table)

	updated, err := scanEntry(r.pool.QueryRow(ctx, query,
		entry.UserID, entry.ID, entry.CategoryID, entry.Amount.String(), entry.Date, entry.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes one of the user's entries
func (r *EntryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND id = $2`, r.table)
	tag, err := r.pool.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	entry := &domain.Entry{}
	var amount string
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.CategoryID,
		&amount,
		&entry.Date,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount: %w", err)
	}
	return entry, nil
}

func orderClause(ordering domain.EntryOrdering) string {
	// Secondary id key keeps list order deterministic for equal values
	switch ordering {
	case domain.OrderByDateAsc:
		return "date ASC, id ASC"
	case domain.OrderByAmountAsc:
		return "amount ASC, id ASC"
	case domain.OrderByAmountDesc:
		return "amount DESC, id DESC"
	default:
		return "date DESC, id DESC"
	}
}
