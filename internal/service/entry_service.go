package service

import (
	"context"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryService handles ledger business logic for one collection. Two
// instances exist, one per kind; the contract is identical.
type EntryService struct {
	entryRepo    domain.EntryRepository
	categoryRepo domain.CategoryRepository
	kind         domain.EntryKind
}

// NewEntryService creates a new EntryService for the given kind
func NewEntryService(entryRepo domain.EntryRepository, categoryRepo domain.CategoryRepository, kind domain.EntryKind) *EntryService {
	return &EntryService{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		kind:         kind,
	}
}

// Kind returns the ledger collection this service operates on
func (s *EntryService) Kind() domain.EntryKind {
	return s.kind
}

// CreateEntryInput holds the input for creating an entry
type CreateEntryInput struct {
	CategoryID *int32
	Amount     decimal.Decimal
	Date       *time.Time
	Notes      *string
}

// CreateEntry creates a new entry owned by userID. The owner is always the
// given principal; nothing in the input can redirect it. The date defaults
// to the current date when omitted.
func (s *EntryService) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*domain.Entry, error) {
	if err := s.validate(ctx, userID, input.CategoryID, input.Amount, input.Notes); err != nil {
		return nil, err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		date = *input.Date
	}

	entry := &domain.Entry{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Date:       date,
		Notes:      input.Notes,
	}

	return s.entryRepo.Create(ctx, entry)
}

// GetEntries retrieves userID's entries with optional filters, default
// ordering date descending
func (s *EntryService) GetEntries(ctx context.Context, userID uuid.UUID, filter *domain.EntryFilter) ([]*domain.Entry, error) {
	if filter != nil && filter.Ordering != "" && !filter.Ordering.Valid() {
		return nil, domain.ErrInvalidOrdering
	}
	return s.entryRepo.GetAllByUser(ctx, userID, filter)
}

// GetEntryByID retrieves one of userID's entries
func (s *EntryService) GetEntryByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Entry, error) {
	return s.entryRepo.GetByID(ctx, userID, id)
}

// UpdateEntry updates one of userID's entries
func (s *EntryService) UpdateEntry(ctx context.Context, userID uuid.UUID, id int32, input CreateEntryInput) (*domain.Entry, error) {
	existing, err := s.entryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, userID, input.CategoryID, input.Amount, input.Notes); err != nil {
		return nil, err
	}

	date := existing.Date
	if input.Date != nil {
		date = *input.Date
	}

	entry := &domain.Entry{
		ID:         id,
		UserID:     userID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Date:       date,
		Notes:      input.Notes,
	}

	return s.entryRepo.Update(ctx, entry)
}

// DeleteEntry deletes one of userID's entries
func (s *EntryService) DeleteEntry(ctx context.Context, userID uuid.UUID, id int32) error {
	return s.entryRepo.Delete(ctx, userID, id)
}

// validate checks amount precision, notes length, and that a referenced
// category exists, belongs to the caller, and matches the entry kind.
func (s *EntryService) validate(ctx context.Context, userID uuid.UUID, categoryID *int32, amount decimal.Decimal, notes *string) error {
	if amount.Exponent() < -2 {
		return domain.ErrInvalidAmount
	}
	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return domain.ErrNotesTooLong
	}
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, userID, *categoryID)
		if err != nil {
			return err
		}
		if category.Type != s.kind.CategoryType() {
			return domain.ErrCategoryTypeMismatch
		}
	}
	return nil
}
