package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// Steps reported inside PurchaseError for diagnostics
const (
	stepBegin  = "begin"
	stepLoad   = "load account"
	stepDebit  = "debit"
	stepUpsert = "item upsert"
	stepCommit = "commit"
)

// Service is the purchase transaction core. It applies a purchase request
// atomically: balance check, debit, and one upsert per line item, all
// over a single database transaction. Two concurrent purchases against
// the same account are serialized by the row lock taken when the account
// is loaded.
type Service struct {
	uow          persistence.UnitOfWork
	validator    *PurchaseValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the purchase service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewPurchaseValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ProcessPurchase applies the purchase or applies nothing.
//
// All preconditions are checked inside the transaction so they see a
// consistent snapshot: the account must exist and its balance must cover
// the declared total cost. Any failure at any step rolls the whole
// transaction back; the deferred rollback also covers panics and early
// returns, so the pinned connection is always released exactly once.
//
// Possible errors:
// - ErrInvalidUserID / ErrInvalidRequest: malformed request, nothing executed
// - ErrUserNotFound: account does not exist
// - ErrInsufficientBalance: balance below the declared total cost
// - ErrDatabaseConnection: any statement-level failure
func (s *Service) ProcessPurchase(ctx context.Context, req *entity.PurchaseRequest) error {
	if err := s.validator.ValidateRequest(req); err != nil {
		s.logger.Warn("Rejected malformed purchase request", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Debug("Starting purchase transaction", map[string]any{
		"user_id":    req.UserID,
		"total_cost": req.TotalCost.String(),
		"item_count": len(req.Items),
	})

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepBegin, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback purchase transaction", map[string]any{
				"user_id": req.UserID,
				"error":   rbErr.Error(),
			})
		}
	}()

	users := s.uow.GetUserRepository(txCtx)

	// Authoritative balance read; the row lock serializes concurrent
	// purchases against this account until commit or rollback.
	user, err := users.GetByIDForUpdate(txCtx, req.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepLoad, errs.ErrUserNotFound)
		}
		return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepLoad, err)
	}

	if !user.CanAfford(req.TotalCost) {
		s.logger.Warn("Purchase rejected: insufficient balance", map[string]any{
			"user_id":         req.UserID,
			"total_cost":      req.TotalCost.String(),
			"current_balance": user.Btc.String(),
		})
		return errs.NewInsufficientBalanceError(req.UserID, req.TotalCost.String(), user.Btc.String())
	}

	// Unconditional decrement of the declared total. The cost is trusted
	// as-declared and not re-derived from catalog prices.
	if err := users.AdjustBalance(txCtx, req.UserID, req.TotalCost.Neg()); err != nil {
		return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepDebit, err)
	}

	owned := s.uow.GetOwnedItemRepository(txCtx)
	for _, line := range req.Items {
		if err := s.upsertLine(txCtx, owned, req.UserID, line); err != nil {
			return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepUpsert, err)
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return errs.NewPurchaseError(req.UserID, req.TotalCost.String(), len(req.Items), stepCommit, err)
	}
	committed = true

	s.logger.Info("Purchase committed", map[string]any{
		"user_id":    req.UserID,
		"total_cost": req.TotalCost.String(),
		"item_count": len(req.Items),
	})
	return nil
}

// upsertLine resolves one purchase line: increment the existing
// (account, item) row or insert a fresh one. Existence is checked first
// so the pair never gains a second row.
func (s *Service) upsertLine(
	ctx context.Context,
	owned persistence.OwnedItemRepository,
	userID uint64,
	line entity.PurchaseLine,
) error {
	existing, err := owned.GetByUserAndItem(ctx, userID, line.ItemID)
	switch {
	case err == nil:
		s.logger.Debug("Incrementing owned item", map[string]any{
			"user_id":  userID,
			"item_id":  line.ItemID,
			"cantidad": line.Cantidad,
			"current":  existing.Quantitat,
		})
		return owned.AddQuantity(ctx, userID, line.ItemID, line.Cantidad)

	case errors.Is(err, errs.ErrNotFound):
		s.logger.Debug("Creating owned item", map[string]any{
			"user_id":  userID,
			"item_id":  line.ItemID,
			"cantidad": line.Cantidad,
		})
		return owned.Create(ctx, &entity.OwnedItem{
			UsuariID:  userID,
			ItemID:    line.ItemID,
			Quantitat: line.Cantidad,
			Nom:       line.Nom,
		})

	default:
		return fmt.Errorf("looking up owned item %d: %w", line.ItemID, err)
	}
}
