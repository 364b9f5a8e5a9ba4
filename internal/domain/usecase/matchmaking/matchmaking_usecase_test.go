package matchmaking

import (
	"context"
	"testing"
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coremocks "github.com/gameplants/plants-api/mocks/port/core"
	persistencemocks "github.com/gameplants/plants-api/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestEnqueue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	account := &entity.User{
		ID:     42,
		Nom:    "Aloe",
		Correu: "aloe@example.com",
		Btc:    decimal.RequireFromString("100.00"),
		Nivell: 4,
	}

	t.Run("snapshots the account fields", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		tp.On("Now").Return(now).Once()
		repo.On("Add", mock.Anything, mock.MatchedBy(func(entry *entity.MatchmakingEntry) bool {
			return entry.Nom == "Aloe" &&
				entry.Correu == "aloe@example.com" &&
				entry.Nivell == 4 &&
				entry.Btc.Equal(account.Btc) &&
				entry.CreadoEn.Equal(now)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.MatchmakingEntry).ID = 17
		}).Return(nil).Once()

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		entryID, err := useCase.Enqueue(ctx, account)

		require.NoError(t, err)
		assert.Equal(t, uint64(17), entryID)
	})

	t.Run("nil account", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		_, err := useCase.Enqueue(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("account without an email", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		_, err := useCase.Enqueue(ctx, &entity.User{ID: 42})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes by id", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		repo.On("Remove", mock.Anything, uint64(17)).Return(nil).Once()

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		require.NoError(t, useCase.Remove(ctx, 17))
	})

	t.Run("removes by email", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		repo.On("RemoveByCorreu", mock.Anything, "aloe@example.com").Return(nil).Once()

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		require.NoError(t, useCase.RemoveByCorreu(ctx, "aloe@example.com"))
	})

	t.Run("unknown entry", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		repo.On("Remove", mock.Anything, uint64(17)).Return(errs.ErrNotFound).Once()

		useCase := NewMatchmakingUseCase(repo, tp, logger)
		assert.ErrorIs(t, useCase.Remove(ctx, 17), errs.ErrNotFound)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		repo := persistencemocks.NewMockMatchmakingRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		useCase := NewMatchmakingUseCase(repo, tp, logger)

		assert.ErrorIs(t, useCase.Remove(ctx, 0), errs.ErrInvalidRequest)
		assert.ErrorIs(t, useCase.RemoveByCorreu(ctx, ""), errs.ErrInvalidRequest)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	repo := persistencemocks.NewMockMatchmakingRepository(t)
	tp := coremocks.NewMockTimeProvider(t)
	logger := newQuietLogger(t)

	entries := []*entity.MatchmakingEntry{{ID: 1}, {ID: 2}}
	repo.On("List", mock.Anything).Return(entries, nil).Once()

	useCase := NewMatchmakingUseCase(repo, tp, logger)
	got, err := useCase.List(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
