package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coremocks "github.com/gameplants/plants-api/mocks/port/core"
	persistencemocks "github.com/gameplants/plants-api/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey mirrors the transactional context key used by the unit of work
type contextKey string

const txKey contextKey = "tx"

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func validRequest() *entity.PurchaseRequest {
	return &entity.PurchaseRequest{
		UserID:    42,
		TotalCost: decimal.RequireFromString("10.50"),
		Items: []entity.PurchaseLine{
			{ItemID: 7, Cantidad: 2, Nom: "Pala"},
		},
	}
}

func TestProcessPurchase(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "tx")

	richUser := func() *entity.User {
		return &entity.User{ID: 42, Btc: decimal.RequireFromString("100.00")}
	}
	poorUser := func() *entity.User {
		return &entity.User{ID: 42, Btc: decimal.RequireFromString("1.00")}
	}

	t.Run("successful purchase of a new item", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), decimal.RequireFromString("-10.50")).Return(nil).Once()

		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, errs.ErrNotFound).Once()
		ownedRepo.On("Create", txCtx, mock.MatchedBy(func(owned *entity.OwnedItem) bool {
			return owned.UsuariID == 42 && owned.ItemID == 7 && owned.Quantitat == 2 && owned.Nom == "Pala"
		})).Return(nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("successful purchase increments an already owned item", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), decimal.RequireFromString("-10.50")).Return(nil).Once()

		existing := &entity.OwnedItem{UsuariID: 42, ItemID: 7, Quantitat: 3, Nom: "Pala"}
		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(existing, nil).Once()
		ownedRepo.On("AddQuantity", txCtx, uint64(42), uint64(7), 2).Return(nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("every line of a multi-item purchase is upserted", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		req := &entity.PurchaseRequest{
			UserID:    42,
			TotalCost: decimal.RequireFromString("25.00"),
			Items: []entity.PurchaseLine{
				{ItemID: 7, Cantidad: 2, Nom: "Pala"},
				{ItemID: 8, Cantidad: 1, Nom: "Regadora"},
			},
		}

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), decimal.RequireFromString("-25.00")).Return(nil).Once()

		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, errs.ErrNotFound).Once()
		ownedRepo.On("Create", txCtx, mock.Anything).Return(nil).Once()
		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(8)).Return(&entity.OwnedItem{UsuariID: 42, ItemID: 8, Quantitat: 5}, nil).Once()
		ownedRepo.On("AddQuantity", txCtx, uint64(42), uint64(8), 1).Return(nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, req)

		require.NoError(t, err)
	})

	t.Run("insufficient balance rolls back without debiting", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(poorUser(), nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		userRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown account rolls back", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("debit failure rolls back", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("upsert failure rolls back after the debit", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), mock.Anything).Return(nil).Once()

		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, errs.ErrNotFound).Once()
		ownedRepo.On("Create", txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unexpected lookup error aborts the item loop", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), mock.Anything).Return(nil).Once()

		lookupErr := errors.New("connection reset")
		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, lookupErr).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, lookupErr)
		ownedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("begin failure executes nothing", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		beginErr := errors.New("connection pool exhausted")
		uow.On("Begin", mock.Anything).Return(nil, beginErr).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, beginErr)
		uow.AssertNotCalled(t, "GetUserRepository", mock.Anything)
	})

	t.Run("commit failure surfaces and triggers the deferred rollback", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		commitErr := errors.New("deadlock detected")
		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Commit", txCtx).Return(commitErr).Once()
		uow.On("Rollback", txCtx).Return(nil).Once()

		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(richUser(), nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), mock.Anything).Return(nil).Once()

		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, errs.ErrNotFound).Once()
		ownedRepo.On("Create", txCtx, mock.Anything).Return(nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, commitErr)
	})

	t.Run("malformed request never touches the unit of work", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, &entity.PurchaseRequest{
			UserID:    0,
			TotalCost: decimal.RequireFromString("10.00"),
			Items:     []entity.PurchaseLine{{ItemID: 7, Cantidad: 1, Nom: "Pala"}},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("exact balance is accepted", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		userRepo := persistencemocks.NewMockUserRepository(t)
		ownedRepo := persistencemocks.NewMockOwnedItemRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := newQuietLogger(t)

		uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		uow.On("GetUserRepository", txCtx).Return(userRepo).Once()
		uow.On("GetOwnedItemRepository", txCtx).Return(ownedRepo).Once()
		uow.On("Commit", txCtx).Return(nil).Once()

		exact := &entity.User{ID: 42, Btc: decimal.RequireFromString("10.50")}
		userRepo.On("GetByIDForUpdate", txCtx, uint64(42)).Return(exact, nil).Once()
		userRepo.On("AdjustBalance", txCtx, uint64(42), decimal.RequireFromString("-10.50")).Return(nil).Once()

		ownedRepo.On("GetByUserAndItem", txCtx, uint64(42), uint64(7)).Return(nil, errs.ErrNotFound).Once()
		ownedRepo.On("Create", txCtx, mock.Anything).Return(nil).Once()

		service := NewService(uow, timeProvider, logger)
		err := service.ProcessPurchase(ctx, validRequest())

		require.NoError(t, err)
	})
}
