package entity

import (
	"testing"
	"time"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coremocks "github.com/gameplants/plants-api/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func TestNewUser(t *testing.T) {
	t.Run("applies registration defaults", func(t *testing.T) {
		tp := fixedTimeProvider(t)

		user, err := NewUser("Aloe", "aloe@example.com", "$2a$10$hash", tp)

		require.NoError(t, err)
		assert.Equal(t, "Aloe", user.Nom)
		assert.Equal(t, "aloe@example.com", user.Correu)
		assert.True(t, user.Btc.IsZero())
		assert.Equal(t, 0, user.LE)
		assert.Equal(t, 1, user.Nivell)
		assert.False(t, user.IsAdmin())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		tp := fixedTimeProvider(t)

		for _, args := range [][3]string{
			{"", "aloe@example.com", "$2a$10$hash"},
			{"Aloe", "", "$2a$10$hash"},
			{"Aloe", "aloe@example.com", ""},
		} {
			_, err := NewUser(args[0], args[1], args[2], tp)
			assert.ErrorIs(t, err, errs.ErrMissingFields)
		}
	})
}

func TestCanAfford(t *testing.T) {
	user := &User{Btc: decimal.RequireFromString("10.00")}

	assert.True(t, user.CanAfford(decimal.RequireFromString("9.99")))
	assert.True(t, user.CanAfford(decimal.RequireFromString("10.00")))
	assert.False(t, user.CanAfford(decimal.RequireFromString("10.01")))
}

func TestDebit(t *testing.T) {
	t.Run("subtracts the cost", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Debit(decimal.RequireFromString("3.50"), tp)

		require.NoError(t, err)
		assert.Equal(t, "6.5", user.Btc.String())
	})

	t.Run("allows debiting the exact balance", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Debit(decimal.RequireFromString("10.00"), tp)

		require.NoError(t, err)
		assert.True(t, user.Btc.IsZero())
	})

	t.Run("rejects a cost above the balance", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Debit(decimal.RequireFromString("10.01"), tp)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "10", user.Btc.String())
	})
}

func TestCredit(t *testing.T) {
	t.Run("adds the amount", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Credit(decimal.RequireFromString("2.50"), tp)

		require.NoError(t, err)
		assert.Equal(t, "12.5", user.Btc.String())
	})

	t.Run("negative amount is a debit", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Credit(decimal.RequireFromString("-4.00"), tp)

		require.NoError(t, err)
		assert.Equal(t, "6", user.Btc.String())
	})

	t.Run("rejects an adjustment below zero", func(t *testing.T) {
		tp := fixedTimeProvider(t)
		user := &User{Btc: decimal.RequireFromString("10.00")}

		err := user.Credit(decimal.RequireFromString("-10.01"), tp)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "10", user.Btc.String())
	})
}

func TestCanManage(t *testing.T) {
	owner := &User{ID: 7}
	admin := &User{ID: 1, Admin: true}
	superadmin := &User{ID: 2, Superadmin: true}
	stranger := &User{ID: 9}

	assert.True(t, owner.CanManage(7))
	assert.True(t, admin.CanManage(7))
	assert.True(t, superadmin.CanManage(7))
	assert.False(t, stranger.CanManage(7))
}
