package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrInvalidLogin     = errors.New("invalid username or password")
	ErrTokenNotFound    = errors.New("token not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrBudgetNotFound   = errors.New("budget not found")
	ErrBudgetExists     = errors.New("budget already exists for this month and category")

	ErrNameRequired         = errors.New("name is required")
	ErrNameTooLong          = errors.New("name exceeds maximum length")
	ErrNotesTooLong         = errors.New("notes exceed maximum length")
	ErrUsernameRequired     = errors.New("username is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrInvalidColor         = errors.New("invalid category color")
	ErrCategoryTypeMismatch = errors.New("category type does not match")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidOrdering      = errors.New("invalid ordering field")
)

// Validation constants
const (
	MaxCategoryNameLength = 50
	MaxNotesLength        = 1000
	MaxUsernameLength     = 150
)
