package chest

import (
	"context"
	"testing"
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coremocks "github.com/gameplants/plants-api/mocks/port/core"
	persistencemocks "github.com/gameplants/plants-api/mocks/port/persistence"
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

func TestCreateChest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stamps the tier and creation time", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		tp.On("Now").Return(now).Once()
		chestRepo.On("Create", mock.Anything, mock.MatchedBy(func(chest *entity.Chest) bool {
			return chest.IDUsuari == 42 && chest.Temps == 3 && chest.CreatedAt.Equal(now)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Chest).ID = 11
		}).Return(nil).Once()

		useCase := NewChestUseCase(chestRepo, tp, logger)
		chest, err := useCase.Create(ctx, 42, 3)

		require.NoError(t, err)
		assert.Equal(t, uint64(11), chest.ID)
	})

	t.Run("zero user id", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		useCase := NewChestUseCase(chestRepo, tp, logger)
		_, err := useCase.Create(ctx, 0, 3)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestGetChestsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account's chests", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		chests := []*entity.Chest{{ID: 1, IDUsuari: 42}, {ID: 2, IDUsuari: 42}}
		chestRepo.On("GetByUser", mock.Anything, uint64(42)).Return(chests, nil).Once()

		useCase := NewChestUseCase(chestRepo, tp, logger)
		got, err := useCase.GetByUser(ctx, 42)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no chests", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		chestRepo.On("GetByUser", mock.Anything, uint64(42)).Return(nil, errs.ErrChestNotFound).Once()

		useCase := NewChestUseCase(chestRepo, tp, logger)
		_, err := useCase.GetByUser(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrChestNotFound)
	})
}

func TestDeleteChest(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes scoped to the owner", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		chestRepo.On("Delete", mock.Anything, uint64(42), uint64(11)).Return(nil).Once()

		useCase := NewChestUseCase(chestRepo, tp, logger)
		err := useCase.Delete(ctx, 42, 11)

		require.NoError(t, err)
	})

	t.Run("missing chest", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		chestRepo.On("Delete", mock.Anything, uint64(42), uint64(11)).Return(errs.ErrChestNotFound).Once()

		useCase := NewChestUseCase(chestRepo, tp, logger)
		err := useCase.Delete(ctx, 42, 11)

		assert.ErrorIs(t, err, errs.ErrChestNotFound)
	})

	t.Run("zero ids are rejected", func(t *testing.T) {
		chestRepo := persistencemocks.NewMockChestRepository(t)
		tp := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		useCase := NewChestUseCase(chestRepo, tp, logger)

		assert.ErrorIs(t, useCase.Delete(ctx, 0, 11), errs.ErrInvalidRequest)
		assert.ErrorIs(t, useCase.Delete(ctx, 42, 0), errs.ErrInvalidRequest)
	})
}
