package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	userUseCase "github.com/gameplants/plants-api/internal/domain/usecase/user"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	userService *userUseCase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// parseID parses a numeric path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ID de usuario inválido"})
		return 0, false
	}
	return id, true
}

// GetAll handles GET /usuaris
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// GetByID handles GET /usuaris/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Usuari no trobat"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetByCorreu handles GET /usuaris/correu/:correu
func (h *UserHandler) GetByCorreu(c *gin.Context) {
	correu := c.Param("correu")

	user, err := h.userService.GetByCorreu(c.Request.Context(), correu)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Usuari no trobat"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Register handles POST /usuaris
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Nom, correu i contrasenya són obligatoris",
		})
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), userUseCase.RegisterInput{
		Nom:          req.Nom,
		Correu:       req.Correu,
		Contrasenya:  req.Contrasenya,
		Edat:         req.Edat,
		Nacionalitat: req.Nacionalitat,
		CodiPostal:   req.CodiPostal,
		ImatgePerfil: req.ImatgePerfil,
		Btc:          req.Btc,
		Admin:        req.Admin,
		Superadmin:   req.Superadmin,
		LE:           req.LE,
		Nivell:       req.Nivell,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Nom, correu i contrasenya són obligatoris",
			})
		case errors.Is(err, errs.ErrDuplicateUser):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "El correu ja està registrat"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserResponse: dto.NewUserResponse(user),
		Token:        token,
	})
}

// Login handles POST /usuaris/api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Faltan datos"})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Faltan datos"})
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Contraseña incorrecta"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error en la base de datos"})
		}
		return
	}

	token, err := h.userService.IssueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login exitoso",
		Usuario: dto.NewUserResponse(user),
		Token:   token,
	})
}

// Update handles PUT /usuaris/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token no proporcionado"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Faltan campos obligatorios"})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), principal, id, userUseCase.ProfileUpdate{
		Nom:          req.Nom,
		Edat:         req.Edat,
		Nacionalitat: req.Nacionalitat,
		CodiPostal:   req.CodiPostal,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "No tienes permiso para modificar este usuario",
			})
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Faltan campos obligatorios"})
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Usuario no encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado correctamente",
		"usuario": dto.NewUserResponse(user),
	})
}

// Delete handles DELETE /usuaris/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token no proporcionado"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "No tienes permiso para modificar este usuario",
			})
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Usuari no trobat"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuari eliminat correctament"})
}

// CreditBalance handles PUT /usuaris/btc/:userId
func (h *UserHandler) CreditBalance(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.CreditResponse{Success: false, Error: "Datos inválidos"})
		return
	}

	if err := h.userService.CreditBalance(c.Request.Context(), userID, req.Amount); err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, dto.CreditResponse{
				Success: false,
				Error:   "Usuario no encontrado",
			})
			return
		}
		if errors.Is(err, errs.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, dto.CreditResponse{
				Success: false,
				Error:   "Saldo insuficiente",
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.CreditResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreditResponse{
		Success: true,
		Message: "Saldo actualizado con éxito",
	})
}
