package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind discriminates the two ledger collections. Incomes and expenses
// are structurally identical but stored and exposed separately.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// CategoryType returns the category type an entry of this kind may reference.
func (k EntryKind) CategoryType() CategoryType {
	if k == EntryKindIncome {
		return CategoryTypeIncome
	}
	return CategoryTypeExpense
}

// Entry is a single income or expense record in the ledger.
type Entry struct {
	ID         int32           `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	CategoryID *int32          `json:"categoryId,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// EntryWithCategory carries the linked category's display fields alongside
// the entry, for the merged transaction feed.
type EntryWithCategory struct {
	Entry
	CategoryName  *string
	CategoryColor *string
}

// EntryOrdering is a list ordering field, "-" prefix meaning descending.
type EntryOrdering string

const (
	OrderByDateAsc    EntryOrdering = "date"
	OrderByDateDesc   EntryOrdering = "-date"
	OrderByAmountAsc  EntryOrdering = "amount"
	OrderByAmountDesc EntryOrdering = "-amount"
)

// Valid reports whether o is one of the supported orderings.
func (o EntryOrdering) Valid() bool {
	switch o {
	case OrderByDateAsc, OrderByDateDesc, OrderByAmountAsc, OrderByAmountDesc:
		return true
	}
	return false
}

// EntryFilter holds optional list filters. Amount bounds are inclusive.
type EntryFilter struct {
	CategoryID *int32
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Ordering   EntryOrdering // zero value means the default, date descending
}

// EntryRepository defines the interface for one ledger collection. The
// backing collection (incomes or expenses) is fixed when the repository is
// constructed; the contract is identical for both kinds.
type EntryRepository interface {
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*Entry, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID, filter *EntryFilter) ([]*Entry, error)
	GetAllWithCategory(ctx context.Context, userID uuid.UUID) ([]*EntryWithCategory, error)
	Update(ctx context.Context, entry *Entry) (*Entry, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
