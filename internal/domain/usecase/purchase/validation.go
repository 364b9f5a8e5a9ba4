package purchase

import (
	"fmt"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	"github.com/go-playground/validator/v10"
)

// PurchaseValidator validates purchase requests before they reach the
// transaction core
type PurchaseValidator struct {
	validate *validator.Validate
}

// NewPurchaseValidator creates a new PurchaseValidator
func NewPurchaseValidator() *PurchaseValidator {
	return &PurchaseValidator{
		validate: validator.New(),
	}
}

// ValidateRequest checks the structural rules of a purchase request:
// positive account id, a non-empty item list, and per-line positive
// quantities with a display name. The declared total cost only needs to
// be non-negative; it is deliberately not checked against catalog prices.
func (v *PurchaseValidator) ValidateRequest(req *entity.PurchaseRequest) error {
	if req.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	if req.TotalCost.IsNegative() {
		return fmt.Errorf("%w: total cost cannot be negative", errs.ErrInvalidRequest)
	}

	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	return nil
}
