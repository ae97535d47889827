package handler

import (
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, categoryHandler *CategoryHandler, incomeHandler *EntryHandler, expenseHandler *EntryHandler, budgetHandler *BudgetHandler, transactionHandler *TransactionHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Everything below requires a bearer token; rate limiting is keyed by
	// the authenticated user so it runs after authentication.
	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())
	protected.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Category routes
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.GET("/categories/:id", categoryHandler.GetCategory)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	// Income routes
	protected.POST("/incomes", incomeHandler.CreateEntry)
	protected.GET("/incomes", incomeHandler.GetEntries)
	protected.GET("/incomes/:id", incomeHandler.GetEntry)
	protected.PUT("/incomes/:id", incomeHandler.UpdateEntry)
	protected.DELETE("/incomes/:id", incomeHandler.DeleteEntry)

	// Expense routes
	protected.POST("/expenses", expenseHandler.CreateEntry)
	protected.GET("/expenses", expenseHandler.GetEntries)
	protected.GET("/expenses/:id", expenseHandler.GetEntry)
	protected.PUT("/expenses/:id", expenseHandler.UpdateEntry)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteEntry)

	// Budget routes
	protected.POST("/budgets", budgetHandler.CreateBudget)
	protected.GET("/budgets", budgetHandler.GetBudgets)
	protected.GET("/budgets/:id", budgetHandler.GetBudget)
	protected.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	protected.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	// Merged transaction feed (read-only)
	protected.GET("/transactions", transactionHandler.GetTransactions)
}
