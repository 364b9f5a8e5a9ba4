package user

import (
	"context"
	"errors"
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// DefaultTokenTTL is used when no token lifetime is configured
const DefaultTokenTTL = time.Hour

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Nom          string
	Correu       string
	Contrasenya  string
	Edat         int
	Nacionalitat string
	CodiPostal   string
	ImatgePerfil string
	Btc          decimal.Decimal
	Admin        bool
	Superadmin   bool
	LE           int
	Nivell       int
}

// ProfileUpdate carries the fields a profile update may change
type ProfileUpdate struct {
	Nom          string
	Edat         int
	Nacionalitat string
	CodiPostal   string
}

// UserUseCase handles account business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	tokenTTL     time.Duration
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	tokenTTL time.Duration,
) *UserUseCase {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &UserUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		tokenTTL:     tokenTTL,
	}
}

// Register creates an account from the given input, hashing its password,
// and returns the stored account together with a signed bearer token.
func (u *UserUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	if input.Nom == "" || input.Correu == "" || input.Contrasenya == "" {
		return nil, "", errs.ErrMissingFields
	}

	hashed, err := u.hasher.Hash(input.Contrasenya)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, "", errs.ErrInternalServer
	}

	user, err := entity.NewUser(input.Nom, input.Correu, hashed, u.timeProvider)
	if err != nil {
		return nil, "", err
	}
	user.Edat = input.Edat
	user.Nacionalitat = input.Nacionalitat
	user.CodiPostal = input.CodiPostal
	user.ImatgePerfil = input.ImatgePerfil
	user.Btc = input.Btc
	user.Admin = input.Admin
	user.Superadmin = input.Superadmin
	user.LE = input.LE
	if input.Nivell > 0 {
		user.Nivell = input.Nivell
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, u.tokenTTL)
	if err != nil {
		u.logger.Error("Failed to sign token for new account", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, "", errs.ErrInternalServer
	}

	u.logger.Info("Account registered", map[string]any{
		"user_id": user.ID,
		"correu":  user.Correu,
	})
	return user, token, nil
}

// Login verifies the email/password pair and returns the account.
// Unknown email and wrong password both map to ErrInvalidCredentials.
func (u *UserUseCase) Login(ctx context.Context, correu, password string) (*entity.User, error) {
	if correu == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	user, err := u.userRepo.GetByCorreu(ctx, correu)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.Compare(user.Contrasenya, password) {
		u.logger.Warn("Login rejected: wrong password", map[string]any{"correu": correu})
		return nil, errs.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a fresh bearer token for an account
func (u *UserUseCase) IssueToken(userID uint64) (string, error) {
	token, err := u.tokens.GenerateToken(userID, u.tokenTTL)
	if err != nil {
		u.logger.Error("Failed to sign token", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", errs.ErrInternalServer
	}
	return token, nil
}

// GetAll returns every account
func (u *UserUseCase) GetAll(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.GetAll(ctx)
}

// GetByID returns an account by id
func (u *UserUseCase) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetByCorreu returns an account by email
func (u *UserUseCase) GetByCorreu(ctx context.Context, correu string) (*entity.User, error) {
	return u.userRepo.GetByCorreu(ctx, correu)
}

// UpdateProfile updates an account's profile fields. The principal must
// be the account itself or an admin.
func (u *UserUseCase) UpdateProfile(ctx context.Context, principal *entity.User, id uint64, input ProfileUpdate) (*entity.User, error) {
	if !principal.CanManage(id) {
		return nil, errs.ErrForbidden
	}
	if input.Nom == "" || input.Nacionalitat == "" || input.CodiPostal == "" || input.Edat <= 0 {
		return nil, errs.ErrMissingFields
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Nom = input.Nom
	user.Edat = input.Edat
	user.Nacionalitat = input.Nacionalitat
	user.CodiPostal = input.CodiPostal
	user.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("Account profile updated", map[string]any{
		"user_id":      id,
		"principal_id": principal.ID,
	})
	return user, nil
}

// Delete removes an account. The principal must be the account itself or
// an admin.
func (u *UserUseCase) Delete(ctx context.Context, principal *entity.User, id uint64) error {
	if !principal.CanManage(id) {
		return errs.ErrForbidden
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Account deleted", map[string]any{
		"user_id":      id,
		"principal_id": principal.ID,
	})
	return nil
}

// CreditBalance applies btc = btc + amount to an account. This is the
// reward path; amount may be negative but may not take the balance
// below zero.
func (u *UserUseCase) CreditBalance(ctx context.Context, userID uint64, amount decimal.Decimal) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Pre-check against the loaded balance; the conditional UPDATE in
	// the repository is the authoritative guard under concurrency.
	if err := user.Credit(amount, u.timeProvider); err != nil {
		u.logger.Warn("Balance adjustment refused", map[string]any{
			"user_id": userID,
			"amount":  amount.String(),
		})
		return err
	}

	if err := u.userRepo.AdjustBalance(ctx, userID, amount); err != nil {
		return err
	}

	u.logger.Info("Account balance adjusted", map[string]any{
		"user_id": userID,
		"amount":  amount.String(),
	})
	return nil
}

// VerifyToken resolves a bearer token to the account it names. Used by
// the auth middleware; a token naming a deleted account is rejected.
func (u *UserUseCase) VerifyToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := u.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrTokenInvalid
		}
		return nil, err
	}
	return user, nil
}
