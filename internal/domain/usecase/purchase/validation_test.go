package purchase

import (
	"testing"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	validator := NewPurchaseValidator()

	line := entity.PurchaseLine{ItemID: 7, Cantidad: 1, Nom: "Pala"}

	tests := []struct {
		name        string
		req         *entity.PurchaseRequest
		expectedErr error
	}{
		{
			name: "valid request",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{line},
			},
		},
		{
			name: "zero total cost is allowed",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.Zero,
				Items:     []entity.PurchaseLine{line},
			},
		},
		{
			name: "zero user id",
			req: &entity.PurchaseRequest{
				UserID:    0,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{line},
			},
			expectedErr: errs.ErrInvalidUserID,
		},
		{
			name: "negative total cost",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("-5.00"),
				Items:     []entity.PurchaseLine{line},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "empty item list",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "zero quantity line",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{{ItemID: 7, Cantidad: 0, Nom: "Pala"}},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "negative quantity line",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{{ItemID: 7, Cantidad: -2, Nom: "Pala"}},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "line without item id",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{{Cantidad: 1, Nom: "Pala"}},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "line without name",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items:     []entity.PurchaseLine{{ItemID: 7, Cantidad: 1}},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
		{
			name: "one bad line invalidates the whole request",
			req: &entity.PurchaseRequest{
				UserID:    1,
				TotalCost: decimal.RequireFromString("5.00"),
				Items: []entity.PurchaseLine{
					line,
					{ItemID: 8, Cantidad: 0, Nom: "Regadora"},
				},
			},
			expectedErr: errs.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRequest(tt.req)

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}
