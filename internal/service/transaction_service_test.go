package service

import (
	"context"
	"testing"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionServiceFixture() (*TransactionService, *testutil.MockEntryRepository, *testutil.MockEntryRepository, *testutil.MockCategoryRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	incomeRepo := testutil.NewMockEntryRepository(categoryRepo)
	expenseRepo := testutil.NewMockEntryRepository(categoryRepo)
	return NewTransactionService(incomeRepo, expenseRepo), incomeRepo, expenseRepo, categoryRepo
}

func TestTransactionService_GetTransactions_MergesAndSortsByDate(t *testing.T) {
	svc, incomeRepo, expenseRepo, _ := newTransactionServiceFixture()
	userID := uuid.New()

	incomeRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID,
		Amount: decimal.RequireFromString("1000.00"),
		Date:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	expenseRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID,
		Amount: decimal.RequireFromString("500.00"),
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := svc.GetTransactions(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	// Newest date first: the expense on Jan 10 before the income on Jan 5
	assert.Equal(t, domain.TransactionTypeExpense, transactions[0].Type)
	assert.Equal(t, "500.00", transactions[0].Amount.StringFixed(2))
	assert.Equal(t, domain.TransactionTypeIncome, transactions[1].Type)
	assert.Equal(t, "1000.00", transactions[1].Amount.StringFixed(2))
}

func TestTransactionService_GetTransactions_LengthIsSumOfBoth(t *testing.T) {
	svc, incomeRepo, expenseRepo, _ := newTransactionServiceFixture()
	userID := uuid.New()

	for i := int32(1); i <= 3; i++ {
		incomeRepo.AddEntry(&domain.Entry{ID: i, UserID: userID, Amount: decimal.RequireFromString("10"), Date: time.Date(2024, 1, int(i), 0, 0, 0, 0, time.UTC)})
	}
	for i := int32(1); i <= 2; i++ {
		expenseRepo.AddEntry(&domain.Entry{ID: i, UserID: userID, Amount: decimal.RequireFromString("5"), Date: time.Date(2024, 2, int(i), 0, 0, 0, 0, time.UTC)})
	}

	transactions, err := svc.GetTransactions(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, transactions, 5)
}

func TestTransactionService_GetTransactions_TieBreakIsDeterministic(t *testing.T) {
	svc, incomeRepo, expenseRepo, _ := newTransactionServiceFixture()
	userID := uuid.New()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	incomeRepo.AddEntry(&domain.Entry{ID: 1, UserID: userID, Amount: decimal.RequireFromString("100"), Date: date, CreatedAt: earlier})
	expenseRepo.AddEntry(&domain.Entry{ID: 2, UserID: userID, Amount: decimal.RequireFromString("50"), Date: date, CreatedAt: later})

	first, err := svc.GetTransactions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Same date: the more recently created record comes first
	assert.Equal(t, domain.TransactionTypeExpense, first[0].Type)
	assert.Equal(t, domain.TransactionTypeIncome, first[1].Type)

	// Repeated calls yield the same order
	for i := 0; i < 5; i++ {
		again, err := svc.GetTransactions(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.Equal(t, first[0].Type, again[0].Type)
		assert.Equal(t, first[0].ID, again[0].ID)
	}
}

func TestTransactionService_GetTransactions_CarriesCategoryFields(t *testing.T) {
	svc, _, expenseRepo, categoryRepo := newTransactionServiceFixture()
	userID := uuid.New()

	color := "#FF5733"
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Food", Type: domain.CategoryTypeExpense, Color: &color})

	categoryID := int32(1)
	expenseRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID, CategoryID: &categoryID,
		Amount: decimal.RequireFromString("25"),
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := svc.GetTransactions(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.NotNil(t, transactions[0].CategoryName)
	assert.Equal(t, "Food", *transactions[0].CategoryName)
	require.NotNil(t, transactions[0].CategoryColor)
	assert.Equal(t, "#FF5733", *transactions[0].CategoryColor)
}

func TestTransactionService_GetTransactions_UncategorizedEntry(t *testing.T) {
	svc, incomeRepo, _, _ := newTransactionServiceFixture()
	userID := uuid.New()

	incomeRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID,
		Amount: decimal.RequireFromString("100"),
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := svc.GetTransactions(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Nil(t, transactions[0].CategoryName)
	assert.Nil(t, transactions[0].CategoryColor)
}

func TestTransactionService_GetTransactions_ScopedToUser(t *testing.T) {
	svc, incomeRepo, expenseRepo, _ := newTransactionServiceFixture()
	alice := uuid.New()
	bob := uuid.New()

	incomeRepo.AddEntry(&domain.Entry{ID: 1, UserID: alice, Amount: decimal.RequireFromString("100"), Date: time.Now()})
	expenseRepo.AddEntry(&domain.Entry{ID: 1, UserID: bob, Amount: decimal.RequireFromString("50"), Date: time.Now()})

	transactions, err := svc.GetTransactions(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, domain.TransactionTypeIncome, transactions[0].Type)
}

func TestTransactionService_GetTransactions_EmptyFeed(t *testing.T) {
	svc, _, _, _ := newTransactionServiceFixture()

	transactions, err := svc.GetTransactions(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, transactions)
}
