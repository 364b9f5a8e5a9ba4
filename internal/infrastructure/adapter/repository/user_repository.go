package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Nom:          m.Nom,
		Correu:       m.Correu,
		Contrasenya:  m.Contrasenya,
		Edat:         m.Edat,
		Nacionalitat: m.Nacionalitat,
		CodiPostal:   m.CodiPostal,
		ImatgePerfil: m.ImatgePerfil,
		Btc:          m.Btc,
		Admin:        m.Admin,
		Superadmin:   m.Superadmin,
		LE:           m.LE,
		Nivell:       m.Nivell,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userEntityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:           u.ID,
		Nom:          u.Nom,
		Correu:       u.Correu,
		Contrasenya:  u.Contrasenya,
		Edat:         u.Edat,
		Nacionalitat: u.Nacionalitat,
		CodiPostal:   u.CodiPostal,
		ImatgePerfil: u.ImatgePerfil,
		Btc:          u.Btc,
		Admin:        u.Admin,
		Superadmin:   u.Superadmin,
		LE:           u.LE,
		Nivell:       u.Nivell,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if isDuplicateKey(err) {
		return errs.ErrDuplicateUser
	}

	return translateError(err)
}

// GetAll retrieves every account
func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var models []model.User
	if result := r.db.WithContext(ctx).Find(&models); result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userModelToEntity(&models[i]))
	}
	return users, nil
}

// GetByID retrieves an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return userModelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves an account holding a FOR UPDATE row lock.
// Only meaningful on a transaction-bound repository; the lock is what
// serializes concurrent purchases against one account.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	r.logger.Debug("User row locked for update", map[string]any{
		"user_id": id,
		"balance": userModel.Btc.String(),
	})
	return userModelToEntity(&userModel), nil
}

// GetByCorreu retrieves an account by email
func (r *UserRepository) GetByCorreu(ctx context.Context, correu string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("correu = ?", correu).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}
	return userModelToEntity(&userModel), nil
}

// Create inserts a new account and backfills the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := userEntityToModel(user)
	if result := r.db.WithContext(ctx).Create(userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	user.ID = userModel.ID
	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"correu":  user.Correu,
	})
	return nil
}

// UpdateProfile updates the mutable profile columns of an account
func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"nom":          user.Nom,
			"edat":         user.Edat,
			"nacionalitat": user.Nacionalitat,
			"codi_postal":  user.CodiPostal,
			"updated_at":   user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AdjustBalance applies btc = btc + delta in a single statement so the
// decrement composes with the row lock taken by GetByIDForUpdate. The
// WHERE clause refuses any delta that would leave the balance negative.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID uint64, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND btc + ? >= 0", userID, delta).
		Updates(map[string]any{
			"btc":        gorm.Expr("btc + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("adjusting balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		// Zero rows means the account is gone or the guard refused the
		// delta; tell them apart so the caller reports the right one.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", userID).Count(&count).Error; err != nil {
			return r.handleDatabaseError("adjusting balance", err, userID)
		}
		if count == 0 {
			return errs.ErrUserNotFound
		}
		r.logger.Warn("Balance adjustment refused", map[string]any{
			"user_id": userID,
			"delta":   delta.String(),
		})
		return errs.ErrInsufficientBalance
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"user_id": userID,
		"delta":   delta.String(),
	})
	return nil
}

// Delete removes an account by ID
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	if result := r.db.WithContext(ctx).Delete(&model.User{}, id); result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}
	return nil
}
