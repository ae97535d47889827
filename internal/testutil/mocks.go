package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByUsername map[string]*domain.User
	ByID       map[uuid.UUID]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByUsername: make(map[string]*domain.User),
		ByID:       make(map[uuid.UUID]*domain.User),
	}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.ByUsername[user.Username]; ok {
		return nil, domain.ErrUsernameTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.ByUsername[user.Username] = user
	m.ByID[user.ID] = user
	return user, nil
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByUsername retrieves a user by username
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if user, ok := m.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByUsername[user.Username] = user
	m.ByID[user.ID] = user
}

// MockAuthTokenRepository is a mock implementation of domain.AuthTokenRepository
type MockAuthTokenRepository struct {
	ByHash map[string]*domain.AuthToken
	ByID   map[uuid.UUID]*domain.AuthToken
}

// NewMockAuthTokenRepository creates a new MockAuthTokenRepository
func NewMockAuthTokenRepository() *MockAuthTokenRepository {
	return &MockAuthTokenRepository{
		ByHash: make(map[string]*domain.AuthToken),
		ByID:   make(map[uuid.UUID]*domain.AuthToken),
	}
}

// Create stores a new token
func (m *MockAuthTokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	m.ByHash[token.TokenHash] = token
	m.ByID[token.ID] = token
	return nil
}

// GetByHash retrieves a token by hash
func (m *MockAuthTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.AuthToken, error) {
	if token, ok := m.ByHash[hash]; ok {
		return token, nil
	}
	return nil, domain.ErrTokenNotFound
}

// GetByUser retrieves the most recently issued token for a user
func (m *MockAuthTokenRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error) {
	var latest *domain.AuthToken
	for _, token := range m.ByID {
		if token.UserID != userID {
			continue
		}
		if latest == nil || token.CreatedAt.After(latest.CreatedAt) {
			latest = token
		}
	}
	if latest == nil {
		return nil, domain.ErrTokenNotFound
	}
	return latest, nil
}

// UpdateLastUsed stamps the token's last used time
func (m *MockAuthTokenRepository) UpdateLastUsed(ctx context.Context, id uuid.UUID) error {
	token, ok := m.ByID[id]
	if !ok {
		return domain.ErrTokenNotFound
	}
	now := time.Now()
	token.LastUsedAt = &now
	return nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	nextID     int32
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		nextID:     1,
	}
}

// Create creates a new category
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = m.nextID
	m.nextID++
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category owned by userID
func (m *MockCategoryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok || category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// GetAllByUser retrieves all categories owned by userID
func (m *MockCategoryRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, typeFilter *domain.CategoryType) ([]*domain.Category, error) {
	result := []*domain.Category{}
	for _, category := range m.Categories {
		if category.UserID != userID {
			continue
		}
		if typeFilter != nil && category.Type != *typeFilter {
			continue
		}
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update updates a category owned by the user
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	existing, ok := m.Categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return nil, domain.ErrCategoryNotFound
	}
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now()
	m.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category owned by the user
func (m *MockCategoryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	category, ok := m.Categories[id]
	if !ok || category.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID >= m.nextID {
		m.nextID = category.ID + 1
	}
	m.Categories[category.ID] = category
}

// MockEntryRepository is a mock implementation of domain.EntryRepository.
// It shares a MockCategoryRepository so the feed join can resolve category
// names and colors.
type MockEntryRepository struct {
	Entries    map[int32]*domain.Entry
	Categories *MockCategoryRepository
	nextID     int32
}

// NewMockEntryRepository creates a new MockEntryRepository
func NewMockEntryRepository(categories *MockCategoryRepository) *MockEntryRepository {
	return &MockEntryRepository{
		Entries:    make(map[int32]*domain.Entry),
		Categories: categories,
		nextID:     1,
	}
}

// Create creates a new entry
func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	entry.ID = m.nextID
	m.nextID++
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	m.Entries[entry.ID] = entry
	return entry, nil
}

// GetByID retrieves an entry owned by userID
func (m *MockEntryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Entry, error) {
	entry, ok := m.Entries[id]
	if !ok || entry.UserID != userID {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

// GetAllByUser retrieves entries owned by userID with filters applied
func (m *MockEntryRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, filter *domain.EntryFilter) ([]*domain.Entry, error) {
	result := []*domain.Entry{}
	for _, entry := range m.Entries {
		if entry.UserID != userID {
			continue
		}
		if filter != nil {
			if filter.CategoryID != nil && (entry.CategoryID == nil || *entry.CategoryID != *filter.CategoryID) {
				continue
			}
			if filter.MinAmount != nil && entry.Amount.LessThan(*filter.MinAmount) {
				continue
			}
			if filter.MaxAmount != nil && entry.Amount.GreaterThan(*filter.MaxAmount) {
				continue
			}
		}
		result = append(result, entry)
	}

	ordering := domain.OrderByDateDesc
	if filter != nil && filter.Ordering != "" {
		ordering = filter.Ordering
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch ordering {
		case domain.OrderByDateAsc:
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
			return a.ID < b.ID
		case domain.OrderByAmountAsc:
			if !a.Amount.Equal(b.Amount) {
				return a.Amount.LessThan(b.Amount)
			}
			return a.ID < b.ID
		case domain.OrderByAmountDesc:
			if !a.Amount.Equal(b.Amount) {
				return a.Amount.GreaterThan(b.Amount)
			}
			return a.ID > b.ID
		default:
			if !a.Date.Equal(b.Date) {
				return a.Date.After(b.Date)
			}
			return a.ID > b.ID
		}
	})
	return result, nil
}

// GetAllWithCategory retrieves entries joined with category display fields
func (m *MockEntryRepository) GetAllWithCategory(ctx context.Context, userID uuid.UUID) ([]*domain.EntryWithCategory, error) {
	result := []*domain.EntryWithCategory{}
	for _, entry := range m.Entries {
		if entry.UserID != userID {
			continue
		}
		e := &domain.EntryWithCategory{Entry: *entry}
		if entry.CategoryID != nil && m.Categories != nil {
			if category, ok := m.Categories.Categories[*entry.CategoryID]; ok {
				e.CategoryName = &category.Name
				e.CategoryColor = category.Color
			}
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update updates an entry owned by the user
func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	existing, ok := m.Entries[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return nil, domain.ErrEntryNotFound
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now()
	m.Entries[entry.ID] = entry
	return entry, nil
}

// Delete removes an entry owned by the user
func (m *MockEntryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	entry, ok := m.Entries[id]
	if !ok || entry.UserID != userID {
		return domain.ErrEntryNotFound
	}
	delete(m.Entries, id)
	return nil
}

// AddEntry adds an entry to the mock repository (helper for tests)
func (m *MockEntryRepository) AddEntry(entry *domain.Entry) {
	if entry.ID >= m.nextID {
		m.nextID = entry.ID + 1
	}
	m.Entries[entry.ID] = entry
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[int32]*domain.Budget
	nextID  int32
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int32]*domain.Budget),
		nextID:  1,
	}
}

// Create creates a new budget, enforcing (user, month, category) uniqueness
func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	for _, existing := range m.Budgets {
		if m.collides(existing, budget) {
			return nil, domain.ErrBudgetExists
		}
	}
	budget.ID = m.nextID
	m.nextID++
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = budget.CreatedAt
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget owned by userID
func (m *MockBudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

// GetAllByUser retrieves all budgets owned by userID
func (m *MockBudgetRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Budget, error) {
	result := []*domain.Budget{}
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			result = append(result, budget)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Month.Equal(result[j].Month) {
			return result[i].Month.After(result[j].Month)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Update updates a budget owned by the user
func (m *MockBudgetRepository) Update(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	existing, ok := m.Budgets[budget.ID]
	if !ok || existing.UserID != budget.UserID {
		return nil, domain.ErrBudgetNotFound
	}
	for _, other := range m.Budgets {
		if other.ID != budget.ID && m.collides(other, budget) {
			return nil, domain.ErrBudgetExists
		}
	}
	budget.CreatedAt = existing.CreatedAt
	budget.UpdatedAt = time.Now()
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// Delete removes a budget owned by the user
func (m *MockBudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID >= m.nextID {
		m.nextID = budget.ID + 1
	}
	m.Budgets[budget.ID] = budget
}

func (m *MockBudgetRepository) collides(a, b *domain.Budget) bool {
	if a.UserID != b.UserID || !a.Month.Equal(b.Month) {
		return false
	}
	if a.CategoryID == nil || b.CategoryID == nil {
		return a.CategoryID == nil && b.CategoryID == nil
	}
	return *a.CategoryID == *b.CategoryID
}
