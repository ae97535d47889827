package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/centavo-app/centavo-backend/internal/service"
	"github.com/centavo-app/centavo-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// EntryHandler handles ledger HTTP requests for one collection. Two
// instances are registered, one under /incomes and one under /expenses.
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest represents the create/update entry request body. There is
// deliberately no owner field; the owner is always the authenticated user.
type EntryRequest struct {
	CategoryID *int32  `json:"categoryId,omitempty"`
	Amount     string  `json:"amount"`
	Date       *string `json:"date,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// EntryResponse represents an entry in API responses
type EntryResponse struct {
	ID         int32   `json:"id"`
	CategoryID *int32  `json:"categoryId"`
	Amount     string  `json:"amount"`
	Date       string  `json:"date"`
	Notes      *string `json:"notes"`
}

// CreateEntry handles POST /api/v1/incomes and POST /api/v1/expenses
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	input, resp := h.bindInput(c)
	if resp != nil {
		return resp
	}

	entry, err := h.entryService.CreateEntry(c.Request().Context(), userID, *input)
	if err != nil {
		if r := entryValidationResponse(c, err); r != nil {
			return r
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("kind", string(h.entryService.Kind())).Msg("Failed to create entry")
		return NewInternalError(c, "Failed to create entry")
	}

	log.Info().Str("user_id", userID.String()).Int32("entry_id", entry.ID).Str("kind", string(h.entryService.Kind())).Msg("Entry created")

	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// GetEntries handles GET /api/v1/incomes and GET /api/v1/expenses
func (h *EntryHandler) GetEntries(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter := &domain.EntryFilter{}

	if v := c.QueryParam("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return NewValidationError(c, "Invalid category filter", []ValidationError{
				{Field: "category", Message: "Must be a category ID"},
			})
		}
		categoryID := int32(id)
		filter.CategoryID = &categoryID
	}
	if v := c.QueryParam("min_amount"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			return NewValidationError(c, "Invalid min_amount", []ValidationError{
				{Field: "min_amount", Message: "Must be a valid decimal number"},
			})
		}
		filter.MinAmount = &min
	}
	if v := c.QueryParam("max_amount"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			return NewValidationError(c, "Invalid max_amount", []ValidationError{
				{Field: "max_amount", Message: "Must be a valid decimal number"},
			})
		}
		filter.MaxAmount = &max
	}
	if v := c.QueryParam("ordering"); v != "" {
		filter.Ordering = domain.EntryOrdering(v)
	}

	entries, err := h.entryService.GetEntries(c.Request().Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrdering) {
			return NewValidationError(c, "Invalid ordering", []ValidationError{
				{Field: "ordering", Message: "Must be one of: date, -date, amount, -amount"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("kind", string(h.entryService.Kind())).Msg("Failed to get entries")
		return NewInternalError(c, "Failed to get entries")
	}

	response := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = toEntryResponse(entry)
	}

	return c.JSON(http.StatusOK, response)
}

// GetEntry handles GET /api/v1/incomes/:id and GET /api/v1/expenses/:id
func (h *EntryHandler) GetEntry(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid entry ID", nil)
	}

	entry, err := h.entryService.GetEntryByID(c.Request().Context(), userID, int32(id))
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return NewNotFoundError(c, "Entry not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("entry_id", id).Msg("Failed to get entry")
		return NewInternalError(c, "Failed to get entry")
	}

	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// UpdateEntry handles PUT /api/v1/incomes/:id and PUT /api/v1/expenses/:id
func (h *EntryHandler) UpdateEntry(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid entry ID", nil)
	}

	input, resp := h.bindInput(c)
	if resp != nil {
		return resp
	}

	entry, err := h.entryService.UpdateEntry(c.Request().Context(), userID, int32(id), *input)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return NewNotFoundError(c, "Entry not found")
		}
		if r := entryValidationResponse(c, err); r != nil {
			return r
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("entry_id", id).Msg("Failed to update entry")
		return NewInternalError(c, "Failed to update entry")
	}

	log.Info().Str("user_id", userID.String()).Int32("entry_id", entry.ID).Str("kind", string(h.entryService.Kind())).Msg("Entry updated")
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// DeleteEntry handles DELETE /api/v1/incomes/:id and DELETE /api/v1/expenses/:id
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid entry ID", nil)
	}

	if err := h.entryService.DeleteEntry(c.Request().Context(), userID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return NewNotFoundError(c, "Entry not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("entry_id", id).Msg("Failed to delete entry")
		return NewInternalError(c, "Failed to delete entry")
	}

	log.Info().Str("user_id", userID.String()).Int("entry_id", id).Str("kind", string(h.entryService.Kind())).Msg("Entry deleted")
	return c.NoContent(http.StatusNoContent)
}

// bindInput parses and validates the request body shared by create and
// update. The second return value is a ready problem response when parsing
// fails.
func (h *EntryHandler) bindInput(c echo.Context) (*service.CreateEntryInput, error) {
	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := util.ParseDate(*req.Date)
		if err != nil {
			return nil, NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		date = &parsed
	}

	return &service.CreateEntryInput{
		CategoryID: req.CategoryID,
		Amount:     amount,
		Date:       date,
		Notes:      req.Notes,
	}, nil
}

// entryValidationResponse maps entry validation errors to problem responses,
// or returns nil for errors it does not handle.
func entryValidationResponse(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidAmount) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must have at most 2 decimal places"},
		})
	}
	if errors.Is(err, domain.ErrNotesTooLong) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "notes", Message: "Notes must be 1000 characters or less"},
		})
	}
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category not found"},
		})
	}
	if errors.Is(err, domain.ErrCategoryTypeMismatch) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category type does not match this collection"},
		})
	}
	return nil
}

func toEntryResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:         entry.ID,
		CategoryID: entry.CategoryID,
		Amount:     entry.Amount.StringFixed(2),
		Date:       entry.Date.Format("2006-01-02"),
		Notes:      entry.Notes,
	}
}
