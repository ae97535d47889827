package handler

import (
	"net/http"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler serves the merged, read-only transaction feed
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionResponse represents one item of the merged feed
type TransactionResponse struct {
	ID            int32   `json:"id"`
	Amount        string  `json:"amount"`
	Category      *string `json:"category"`
	CategoryColor *string `json:"categoryColor"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	Notes         *string `json:"notes"`
}

// GetTransactions handles GET /api/v1/transactions. The feed takes no
// filter or pagination parameters.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	transactions, err := h.transactionService.GetTransactions(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get transactions")
		return NewInternalError(c, "Failed to get transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}

	return c.JSON(http.StatusOK, response)
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Amount:        t.Amount.StringFixed(2),
		Category:      t.CategoryName,
		CategoryColor: t.CategoryColor,
		Type:          string(t.Type),
		Date:          t.Date.Format("2006-01-02"),
		Notes:         t.Notes,
	}
}
