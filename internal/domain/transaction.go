package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is the derived, read-only projection of an income or expense
// entry in the merged feed. It is constructed during the merge, never stored;
// the Type tag records the originating collection.
type Transaction struct {
	ID            int32           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryName  *string         `json:"category"`
	CategoryColor *string         `json:"categoryColor"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Notes         *string         `json:"notes"`

	// CreatedAt is retained from the source entry as the sort tie-break for
	// equal dates; it is not part of the API response.
	CreatedAt time.Time `json:"-"`
}
