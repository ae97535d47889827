package service

import (
	"context"
	"sort"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// TransactionService composes the two ledger collections into the merged,
// read-only transaction feed
type TransactionService struct {
	incomeRepo  domain.EntryRepository
	expenseRepo domain.EntryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(incomeRepo, expenseRepo domain.EntryRepository) *TransactionService {
	return &TransactionService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// GetTransactions returns all of userID's incomes and expenses as a single
// eagerly materialized feed, each item tagged with its originating kind,
// sorted by date descending. Ties on date are broken by creation time
// descending, then id descending, so the order is deterministic.
func (s *TransactionService) GetTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	incomes, err := s.incomeRepo.GetAllWithCategory(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAllWithCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(incomes)+len(expenses))
	for _, e := range incomes {
		transactions = append(transactions, toTransaction(e, domain.TransactionTypeIncome))
	}
	for _, e := range expenses {
		transactions = append(transactions, toTransaction(e, domain.TransactionTypeExpense))
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return transactions, nil
}

// toTransaction builds the tagged projection; the fetched entry is never
// mutated.
func toTransaction(e *domain.EntryWithCategory, t domain.TransactionType) *domain.Transaction {
	return &domain.Transaction{
		ID:            e.ID,
		Amount:        e.Amount,
		CategoryName:  e.CategoryName,
		CategoryColor: e.CategoryColor,
		Type:          t,
		Date:          e.Date,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}
