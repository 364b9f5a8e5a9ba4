package handler

import (
	"errors"
	"net/http"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	purchaseUseCase "github.com/gameplants/plants-api/internal/domain/usecase/purchase"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles the multi-item purchase endpoint
type PurchaseHandler struct {
	purchaseService *purchaseUseCase.Service
	logger          coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchaseService *purchaseUseCase.Service, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// ProcessPurchase handles POST /items_usuaris. Every failure answers 400
// with {"success":false,"error":...}; a committed purchase answers 200.
func (h *PurchaseHandler) ProcessPurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid purchase request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.PurchaseErrorResponse{
			Success: false,
			Error:   "Solicitud inválida: " + err.Error(),
		})
		return
	}

	lines := make([]entity.PurchaseLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, entity.PurchaseLine{
			ItemID:   item.ItemID,
			Cantidad: item.Cantidad,
			Nom:      item.Nom,
		})
	}

	err := h.purchaseService.ProcessPurchase(c.Request.Context(), &entity.PurchaseRequest{
		UserID:    req.UserID,
		TotalCost: req.TotalCost,
		Items:     lines,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.PurchaseErrorResponse{
			Success: false,
			Error:   purchaseErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Success: true,
		Message: "Compra realizada con éxito",
	})
}

// purchaseErrorMessage maps domain errors onto the user-facing messages
func purchaseErrorMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		return "Usuario no encontrado"
	case errors.Is(err, errs.ErrInsufficientBalance):
		return "Saldo insuficiente"
	default:
		return err.Error()
	}
}
