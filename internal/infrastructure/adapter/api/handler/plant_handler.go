package handler

import (
	"errors"
	"net/http"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	plantUseCase "github.com/gameplants/plants-api/internal/domain/usecase/plant"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PlantHandler handles plant HTTP requests
type PlantHandler struct {
	plantService *plantUseCase.PlantUseCase
	logger       coreport.Logger
}

// NewPlantHandler creates a new plant handler instance
func NewPlantHandler(plantService *plantUseCase.PlantUseCase, logger coreport.Logger) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
		logger:       logger,
	}
}

// GetAll handles GET /plantas
func (h *PlantHandler) GetAll(c *gin.Context) {
	plants, err := h.plantService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantResponses(plants))
}

// GetByID handles GET /plantas/:id
func (h *PlantHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	plant, err := h.plantService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Planta no trobada"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantResponse(plant))
}

// GetByUser handles GET /plantas/usuaris/:id
func (h *PlantHandler) GetByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	plants, err := h.plantService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantResponses(plants))
}

// Create handles POST /plantas
func (h *PlantHandler) Create(c *gin.Context) {
	var req dto.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Datos inválidos"})
		return
	}

	plant, err := h.plantService.Create(c.Request.Context(), plantUseCase.CreateInput{
		UsuariID:          req.UsuariID,
		Nom:               req.Nom,
		Tipus:             req.Tipus,
		Nivell:            req.Nivell,
		Atac:              req.Atac,
		Defensa:           req.Defensa,
		Velocitat:         req.Velocitat,
		HabilitatEspecial: req.HabilitatEspecial,
		Energia:           req.Energia,
		Estat:             req.Estat,
		Raritat:           req.Raritat,
		Imatge:            req.Imatge,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ID de usuario inválido"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.NewPlantResponse(plant))
}

// Update handles PUT /plantas/:id
func (h *PlantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Datos inválidos"})
		return
	}

	plant, err := h.plantService.Update(c.Request.Context(), id, plantUseCase.UpdateInput{
		Nom:               req.Nom,
		Tipus:             req.Tipus,
		Nivell:            req.Nivell,
		Atac:              req.Atac,
		Defensa:           req.Defensa,
		Velocitat:         req.Velocitat,
		HabilitatEspecial: req.HabilitatEspecial,
		Energia:           req.Energia,
		Estat:             req.Estat,
		Raritat:           req.Raritat,
		Imatge:            req.Imatge,
	})
	if err != nil {
		if errors.Is(err, errs.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Planta no trobada"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPlantResponse(plant))
}

// Delete handles DELETE /plantas/:id
func (h *PlantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.plantService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Planta no trobada"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Planta eliminada correctament"})
}
