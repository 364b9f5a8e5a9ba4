package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"invalid user id", ErrInvalidUserID, CodeInvalidUserID},
		{"missing fields", ErrMissingFields, CodeMissingFields},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"invalid deck", ErrInvalidDeck, CodeInvalidDeck},
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"plant not found", ErrPlantNotFound, CodeNotFound},
		{"deck not found", ErrDeckNotFound, CodeNotFound},
		{"chest not found", ErrChestNotFound, CodeNotFound},
		{"items not found", ErrItemsNotFound, CodeNotFound},
		{"generic not found", ErrNotFound, CodeNotFound},
		{"token invalid", ErrTokenInvalid, CodeUnauthorized},
		{"token expired", ErrTokenExpired, CodeUnauthorized},
		{"token missing", ErrTokenMissing, CodeUnauthorized},
		{"forbidden", ErrForbidden, CodeForbidden},
		{"duplicate user", ErrDuplicateUser, CodeDuplicateUser},
		{"constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"transaction conflict", ErrTransactionConflict, CodeTransactionConflict},
		{"unknown error", errors.New("boom"), CodeInternalServer},
		{"wrapped error keeps its code", fmt.Errorf("context: %w", ErrUserNotFound), CodeUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, "10.50", "1.00")

	t.Run("matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.True(t, IsInsufficientBalanceError(err))
	})

	t.Run("message carries the amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "42")
		assert.Contains(t, err.Error(), "10.50")
		assert.Contains(t, err.Error(), "1.00")
	})

	t.Run("log fields", func(t *testing.T) {
		var detailed *InsufficientBalanceError
		ok := errors.As(err, &detailed)
		assert.True(t, ok)

		fields := detailed.LogFields()
		assert.Equal(t, uint64(42), fields["user_id"])
		assert.Equal(t, "10.50", fields["total_cost"])
		assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
	})
}

func TestPurchaseError(t *testing.T) {
	inner := ErrDatabaseConnection
	err := NewPurchaseError(42, "10.50", 3, "debit", inner)

	t.Run("unwraps to the cause", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrDatabaseConnection)
	})

	t.Run("message names the step", func(t *testing.T) {
		assert.Contains(t, err.Error(), "debit")
		assert.Contains(t, err.Error(), "items: 3")
	})

	t.Run("log fields carry the cause code", func(t *testing.T) {
		var detailed *PurchaseError
		ok := errors.As(err, &detailed)
		assert.True(t, ok)

		fields := detailed.LogFields()
		assert.Equal(t, "debit", fields["step"])
		assert.Equal(t, CodeInternalServer, fields["error_code"])
	})
}

func TestPredicates(t *testing.T) {
	t.Run("not found family", func(t *testing.T) {
		for _, err := range []error{
			ErrNotFound, ErrUserNotFound, ErrPlantNotFound,
			ErrDeckNotFound, ErrChestNotFound, ErrItemsNotFound,
		} {
			assert.True(t, IsNotFoundError(err), err.Error())
		}
		assert.False(t, IsNotFoundError(ErrForbidden))
	})

	t.Run("auth family", func(t *testing.T) {
		for _, err := range []error{ErrTokenInvalid, ErrTokenExpired, ErrTokenMissing} {
			assert.True(t, IsAuthError(err), err.Error())
		}
		assert.False(t, IsAuthError(ErrUserNotFound))
	})

	t.Run("user not found", func(t *testing.T) {
		assert.True(t, IsUserNotFoundError(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsUserNotFoundError(ErrNotFound))
	})
}
