package handler

import (
	"errors"
	"net/http"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	matchmakingUseCase "github.com/gameplants/plants-api/internal/domain/usecase/matchmaking"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MatchmakingHandler handles waiting-list HTTP requests
type MatchmakingHandler struct {
	matchmakingService *matchmakingUseCase.MatchmakingUseCase
	logger             coreport.Logger
}

// NewMatchmakingHandler creates a new matchmaking handler instance
func NewMatchmakingHandler(
	matchmakingService *matchmakingUseCase.MatchmakingUseCase,
	logger coreport.Logger,
) *MatchmakingHandler {
	return &MatchmakingHandler{
		matchmakingService: matchmakingService,
		logger:             logger,
	}
}

// Enqueue handles POST /matchmaking/agregar. The snapshot is taken from
// the authenticated account rather than trusted from the request body.
func (h *MatchmakingHandler) Enqueue(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token no proporcionado"})
		return
	}

	entryID, err := h.matchmakingService.Enqueue(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al agregar usuario a la lista de espera",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.EnqueueResponse{
		Message: "Usuario agregado a la lista de espera",
		UserID:  entryID,
	})
}

// List handles GET /matchmaking/lista
func (h *MatchmakingHandler) List(c *gin.Context) {
	entries, err := h.matchmakingService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al obtener la lista de espera",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewMatchmakingEntryResponses(entries))
}

// Remove handles DELETE /matchmaking/eliminar/:id
func (h *MatchmakingHandler) Remove(c *gin.Context) {
	entryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.matchmakingService.Remove(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Usuario no encontrado en la lista de espera",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al eliminar usuario de la lista de espera",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado de la lista de espera"})
}

// RemoveByCorreu handles DELETE /matchmaking/eliminar-correu/:correu
func (h *MatchmakingHandler) RemoveByCorreu(c *gin.Context) {
	correu := c.Param("correu")

	if err := h.matchmakingService.RemoveByCorreu(c.Request.Context(), correu); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Usuario no encontrado en la lista de espera",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al eliminar usuario de la lista de espera",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado de la lista de espera"})
}
