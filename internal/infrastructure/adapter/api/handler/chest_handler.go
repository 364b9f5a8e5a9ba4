package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	chestUseCase "github.com/gameplants/plants-api/internal/domain/usecase/chest"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ChestHandler handles chest HTTP requests
type ChestHandler struct {
	chestService *chestUseCase.ChestUseCase
	logger       coreport.Logger
}

// NewChestHandler creates a new chest handler instance
func NewChestHandler(chestService *chestUseCase.ChestUseCase, logger coreport.Logger) *ChestHandler {
	return &ChestHandler{
		chestService: chestService,
		logger:       logger,
	}
}

// GetByUser handles GET /cofres/:id
func (h *ChestHandler) GetByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	chests, err := h.chestService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if len(chests) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "cofre no trobat"})
		return
	}

	c.JSON(http.StatusOK, dto.NewChestResponses(chests))
}

// Create handles POST /cofres/:userId/:tipo
func (h *ChestHandler) Create(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	tier, err := strconv.Atoi(c.Param("tipo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Tipo de cofre inválido"})
		return
	}

	chest, err := h.chestService.Create(c.Request.Context(), userID, tier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreateChestResponse{
		Message: "Cofre creat correctament",
		CofreID: chest.ID,
	})
}

// Delete handles DELETE /cofres/:userId/:cofreId
func (h *ChestHandler) Delete(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	chestID, ok := parseID(c, "cofreId")
	if !ok {
		return
	}

	if err := h.chestService.Delete(c.Request.Context(), userID, chestID); err != nil {
		if errors.Is(err, errs.ErrChestNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Cofre no trobat o ja eliminat"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cofre eliminat correctament"})
}
