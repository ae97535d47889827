package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/centavo-app/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Helper to inject an authenticated user into the request context
func setupAuthContext(c echo.Context, userID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newCategoryHandlerFixture() (*CategoryHandler, *testutil.MockCategoryRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	return NewCategoryHandler(service.NewCategoryService(categoryRepo)), categoryRepo
}

func TestCreateCategory(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerFixture()
	userID := uuid.New()

	body := `{"name":"Groceries","type":"expense","color":"#FF5733"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, userID)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Groceries" {
		t.Errorf("Expected name 'Groceries', got %s", response.Name)
	}
	if response.Type != "expense" {
		t.Errorf("Expected type 'expense', got %s", response.Type)
	}
	if response.Color == nil || *response.Color != "#FF5733" {
		t.Errorf("Expected color '#FF5733', got %v", response.Color)
	}
}

func TestCreateCategory_MissingName(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerFixture()

	body := `{"name":"","type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateCategory_InvalidType(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerFixture()

	body := `{"name":"Savings","type":"savings"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateCategory_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerFixture()

	body := `{"name":"Groceries","type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetCategories_TypeFilter(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerFixture()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Salary", Type: domain.CategoryTypeIncome})
	categoryRepo.AddCategory(&domain.Category{ID: 2, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories?type=income", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, userID)

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(response))
	}
	if response[0].Name != "Salary" {
		t.Errorf("Expected name 'Salary', got %s", response[0].Name)
	}
}

func TestGetCategory_NotOwnedReturns404(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerFixture()
	owner := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: owner, Name: "Rent", Type: domain.CategoryTypeExpense})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, uuid.New())

	if err := handler.GetCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestUpdateCategory(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerFixture()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})

	body := `{"name":"Housing","type":"expense"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, userID)

	if err := handler.UpdateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Housing" {
		t.Errorf("Expected name 'Housing', got %s", response.Name)
	}
}

func TestDeleteCategory(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerFixture()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "Rent", Type: domain.CategoryTypeExpense})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, userID)

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(categoryRepo.Categories) != 0 {
		t.Errorf("Expected category to be deleted, %d remain", len(categoryRepo.Categories))
	}
}

func TestDeleteCategory_NotOwnedReturns404(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerFixture()
	owner := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: owner, Name: "Rent", Type: domain.CategoryTypeExpense})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, uuid.New())

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if len(categoryRepo.Categories) != 1 {
		t.Errorf("Expected category to survive, %d remain", len(categoryRepo.Categories))
	}
}
