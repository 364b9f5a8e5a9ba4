package handler

import (
	"errors"
	"net/http"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	deckUseCase "github.com/gameplants/plants-api/internal/domain/usecase/deck"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DeckHandler handles deck HTTP requests
type DeckHandler struct {
	deckService *deckUseCase.DeckUseCase
	logger      coreport.Logger
}

// NewDeckHandler creates a new deck handler instance
func NewDeckHandler(deckService *deckUseCase.DeckUseCase, logger coreport.Logger) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		logger:      logger,
	}
}

// GetPlants handles GET /mazo/:userId
func (h *DeckHandler) GetPlants(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	plants, err := h.deckService.GetPlants(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrDeckNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No se encontraron plantas para este usuario",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, dto.NewDeckPlantResponses(plants))
}

// GetPlantsByCorreu handles GET /mazo/correu/:correu
func (h *DeckHandler) GetPlantsByCorreu(c *gin.Context) {
	correu := c.Param("correu")

	plants, err := h.deckService.GetPlantsByCorreu(c.Request.Context(), correu)
	if err != nil {
		if errors.Is(err, errs.ErrDeckNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No se encontraron plantas para este usuario",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, dto.NewDeckPlantResponses(plants))
}

// SetDeck handles PUT /mazo/:userId
func (h *DeckHandler) SetDeck(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.SetDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Datos inválidos. Se requieren entre 1 y 3 plantas",
		})
		return
	}

	created, err := h.deckService.SetDeck(c.Request.Context(), userID, req.Mazo)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDeck):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Datos inválidos. Se requieren entre 1 y 3 plantas",
			})
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "El usuario no existe"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
		}
		return
	}

	if created {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Mazo creado correctamente"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Mazo actualizado correctamente"})
}

// Exists handles GET /mazo/existeMazo/:userId
func (h *DeckHandler) Exists(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	exists, err := h.deckService.Exists(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, dto.DeckExistsResponse{Existe: exists})
}
