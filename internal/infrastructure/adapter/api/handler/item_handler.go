package handler

import (
	"errors"
	"net/http"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	itemUseCase "github.com/gameplants/plants-api/internal/domain/usecase/item"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ItemHandler handles catalog and inventory HTTP requests
type ItemHandler struct {
	itemService *itemUseCase.ItemUseCase
	logger      coreport.Logger
}

// NewItemHandler creates a new item handler instance
func NewItemHandler(itemService *itemUseCase.ItemUseCase, logger coreport.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// GetCatalog handles GET /items
func (h *ItemHandler) GetCatalog(c *gin.Context) {
	items, err := h.itemService.GetCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

// GetByIDs handles POST /items/by-ids
func (h *ItemHandler) GetByIDs(c *gin.Context) {
	var req dto.ItemsByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "La llista d'IDs és requerida i no pot estar buida.",
		})
		return
	}

	items, err := h.itemService.GetByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "La llista d'IDs és requerida i no pot estar buida.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

// GetOwnedByUser handles GET /items_usuaris/:id
func (h *ItemHandler) GetOwnedByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	items, err := h.itemService.GetOwnedByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrItemsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "No se encontraron ítems",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.OwnedItemsResponse{
		Success: true,
		Items:   dto.NewOwnedItemResponses(items),
	})
}
