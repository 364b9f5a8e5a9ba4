package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidRequest      = 4002
	CodeInvalidUserID       = 4003
	CodeMissingFields       = 4004
	CodeInvalidCredentials  = 4005
	CodeInvalidDeck         = 4006
	CodeUserNotFound        = 4040
	CodeNotFound            = 4041
	CodeUnauthorized        = 4010
	CodeForbidden           = 4030
	CodeDuplicateUser       = 4090
	CodeConstraintViolation = 4091

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeTransactionConflict = 5001
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account cannot cover a purchase
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingFields is returned when required request fields are absent
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidCredentials is returned when login email/password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidDeck is returned when a deck update carries no plants or too many
	ErrInvalidDeck = errors.New("deck must hold between 1 and 3 plants")

	// ErrUserNotFound is returned when the requested account doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrPlantNotFound is returned when the requested plant doesn't exist
	ErrPlantNotFound = errors.New("plant not found")

	// ErrDeckNotFound is returned when an account has no deck rows
	ErrDeckNotFound = errors.New("deck not found")

	// ErrChestNotFound is returned when the requested chest doesn't exist
	ErrChestNotFound = errors.New("chest not found")

	// ErrItemsNotFound is returned when an account owns no items
	ErrItemsNotFound = errors.New("no owned items found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTokenInvalid is returned when a bearer token fails verification
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned when a bearer token is past its expiry
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMissing is returned when no bearer token was supplied
	ErrTokenMissing = errors.New("token not provided")

	// ErrForbidden is returned when the principal may not act on the resource
	ErrForbidden = errors.New("operation not permitted for this account")

	// ErrDuplicateUser is returned when registering an email that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDatabaseConnection is returned when a statement or connection fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransactionConflict is returned when a statement loses to a
	// deadlock or serialization failure; the request may be retried
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrConstraintViolation is returned when a statement breaks a
	// database constraint other than the unique account email
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidDeck):
		return CodeInvalidDeck
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPlantNotFound),
		errors.Is(err, ErrDeckNotFound),
		errors.Is(err, ErrChestNotFound),
		errors.Is(err, ErrItemsNotFound),
		errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenMissing):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrTransactionConflict):
		return CodeTransactionConflict
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for a
// purchase an account cannot afford
type InsufficientBalanceError struct {
	UserID      uint64
	TotalCost   string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.TotalCost, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"total_cost":      e.TotalCost,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, totalCost, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		TotalCost:   totalCost,
		CurrBalance: currentBalance,
	}
}

// PurchaseError represents a failure inside the purchase transaction core
type PurchaseError struct {
	UserID    uint64
	TotalCost string
	ItemCount int
	Step      string
	Err       error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase failed for user %d at %s (total: %s, items: %d): %v",
		e.UserID, e.Step, e.TotalCost, e.ItemCount, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "purchase_error",
		"user_id":    e.UserID,
		"total_cost": e.TotalCost,
		"item_count": e.ItemCount,
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(userID uint64, totalCost string, itemCount int, step string, err error) error {
	return &PurchaseError{
		UserID:    userID,
		TotalCost: totalCost,
		ItemCount: itemCount,
		Step:      step,
		Err:       err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlantNotFound) ||
		errors.Is(err, ErrDeckNotFound) ||
		errors.Is(err, ErrChestNotFound) ||
		errors.Is(err, ErrItemsNotFound)
}

// IsAuthError checks if the error maps to an unauthorized response
func IsAuthError(err error) bool {
	return errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMissing)
}
