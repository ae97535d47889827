package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newTransactionHandlerFixture() (*TransactionHandler, *testutil.MockEntryRepository, *testutil.MockEntryRepository, *testutil.MockCategoryRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	incomeRepo := testutil.NewMockEntryRepository(categoryRepo)
	expenseRepo := testutil.NewMockEntryRepository(categoryRepo)
	svc := service.NewTransactionService(incomeRepo, expenseRepo)
	return NewTransactionHandler(svc), incomeRepo, expenseRepo, categoryRepo
}

func TestGetTransactions(t *testing.T) {
	e := echo.New()
	handler, incomeRepo, expenseRepo, categoryRepo := newTransactionHandlerFixture()
	userID := uuid.New()

	color := "#FF5733"
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Food", Type: domain.CategoryTypeExpense, Color: &color})

	incomeRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID,
		Amount: decimal.RequireFromString("1000.00"),
		Date:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	categoryID := int32(1)
	expenseRepo.AddEntry(&domain.Entry{
		ID: 1, UserID: userID, CategoryID: &categoryID,
		Amount: decimal.RequireFromString("500.00"),
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, userID)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(response))
	}

	// Newest first: the expense on Jan 10 before the income on Jan 5
	if response[0].Type != "expense" {
		t.Errorf("Expected first transaction type 'expense', got %s", response[0].Type)
	}
	if response[0].Amount != "500.00" {
		t.Errorf("Expected amount '500.00', got %s", response[0].Amount)
	}
	if response[0].Category == nil || *response[0].Category != "Food" {
		t.Errorf("Expected category 'Food', got %v", response[0].Category)
	}
	if response[0].CategoryColor == nil || *response[0].CategoryColor != "#FF5733" {
		t.Errorf("Expected categoryColor '#FF5733', got %v", response[0].CategoryColor)
	}
	if response[1].Type != "income" {
		t.Errorf("Expected second transaction type 'income', got %s", response[1].Type)
	}
}

func TestGetTransactions_Empty(t *testing.T) {
	e := echo.New()
	handler, _, _, _ := newTransactionHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 0 {
		t.Errorf("Expected empty feed, got %d transactions", len(response))
	}
}

func TestGetTransactions_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _, _, _ := newTransactionHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
