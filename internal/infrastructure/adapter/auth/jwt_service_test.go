package auth

import (
	"testing"
	"time"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coremocks "github.com/gameplants/plants-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-key"

func TestGenerateAndVerifyToken(t *testing.T) {
	// Verification checks expiry against the wall clock, so issue
	// relative to it.
	now := time.Now()

	t.Run("round trip", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Now").Return(now).Once()

		service := NewJWTService(testSecret, tp)

		token, err := service.GenerateToken(42, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), userID)
	})

	t.Run("expired token", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Now").Return(time.Now().Add(-2 * time.Hour)).Once()

		service := NewJWTService(testSecret, tp)

		token, err := service.GenerateToken(42, time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Now").Return(now).Once()

		signer := NewJWTService(testSecret, tp)
		verifier := NewJWTService("a-different-key", tp)

		token, err := signer.GenerateToken(42, time.Hour)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		service := NewJWTService(testSecret, tp)

		_, err := service.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
	})

	t.Run("token without an account id", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.On("Now").Return(now).Once()

		service := NewJWTService(testSecret, tp)

		token, err := service.GenerateToken(0, time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
	})
}
