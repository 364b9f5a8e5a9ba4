package item

import (
	"context"
	"testing"

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

func TestGetByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching rows", func(t *testing.T) {
		itemRepo := persistencemocks.NewMockItemRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		logger := newQuietLogger(t)

		items := []*entity.Item{{ID: 7, Nom: "Pala"}}
		itemRepo.On("GetByIDs", mock.Anything, []uint64{7, 8}).Return(items, nil).Once()

		useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
		got, err := useCase.GetByIDs(ctx, []uint64{7, 8})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty id list", func(t *testing.T) {
		itemRepo := persistencemocks.NewMockItemRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		logger := newQuietLogger(t)

		useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
		_, err := useCase.GetByIDs(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		itemRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})
}

func TestGetOwnedByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the owned rows", func(t *testing.T) {
		itemRepo := persistencemocks.NewMockItemRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		logger := newQuietLogger(t)

		owned := []*entity.OwnedItem{{UsuariID: 42, ItemID: 7, Quantitat: 2}}
		ownedRepo.On("GetByUser", mock.Anything, uint64(42)).Return(owned, nil).Once()

		useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
		got, err := useCase.GetOwnedByUser(ctx, 42)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("an empty inventory maps to not found", func(t *testing.T) {
		itemRepo := persistencemocks.NewMockItemRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		logger := newQuietLogger(t)

		ownedRepo.On("GetByUser", mock.Anything, uint64(42)).Return([]*entity.OwnedItem{}, nil).Once()

		useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
		_, err := useCase.GetOwnedByUser(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrItemsNotFound)
	})

	t.Run("zero user id", func(t *testing.T) {
		itemRepo := persistencemocks.NewMockItemRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		logger := newQuietLogger(t)

		useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
		_, err := useCase.GetOwnedByUser(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestGetCatalog(t *testing.T) {
	ctx := context.Background()

	itemRepo := persistencemocks.NewMockItemRepository(t)
	ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
	logger := newQuietLogger(t)

	catalog := []*entity.Item{{ID: 7, Nom: "Pala"}, {ID: 8, Nom: "Regadora"}}
	itemRepo.On("GetAll", mock.Anything).Return(catalog, nil).Once()

	useCase := NewItemUseCase(itemRepo, ownedRepo, logger)
	got, err := useCase.GetCatalog(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
