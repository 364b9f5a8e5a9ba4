package item

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// ItemUseCase serves the read-only item catalog and per-account
// owned-item listings
type ItemUseCase struct {
	itemRepo  persistence.ItemRepository
	ownedRepo persistence.OwnedItemRepository
	logger    coreport.Logger
}

// NewItemUseCase creates a new ItemUseCase
func NewItemUseCase(
	itemRepo persistence.ItemRepository,
	ownedRepo persistence.OwnedItemRepository,
	logger coreport.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:  itemRepo,
		ownedRepo: ownedRepo,
		logger:    logger,
	}
}

// GetCatalog returns the full item catalog
func (i *ItemUseCase) GetCatalog(ctx context.Context) ([]*entity.Item, error) {
	return i.itemRepo.GetAll(ctx)
}

// GetByIDs returns the catalog rows matching the given ids
func (i *ItemUseCase) GetByIDs(ctx context.Context, ids []uint64) ([]*entity.Item, error) {
	if len(ids) == 0 {
		return nil, errs.ErrInvalidRequest
	}
	return i.itemRepo.GetByIDs(ctx, ids)
}

// GetOwnedByUser returns the owned-item rows for an account.
// ErrItemsNotFound when the account owns nothing.
func (i *ItemUseCase) GetOwnedByUser(ctx context.Context, userID uint64) ([]*entity.OwnedItem, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	owned, err := i.ownedRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, errs.ErrItemsNotFound
	}
	return owned, nil
}
