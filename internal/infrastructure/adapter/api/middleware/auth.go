package middleware

import (
	"net/http"
	"strings"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	userUseCase "github.com/gameplants/plants-api/internal/domain/usecase/user"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key holding the authenticated account
const principalKey = "principal"

// Auth resolves the Authorization bearer token to an account and stores
// it in the gin context. Requests without a valid token get a 401.
func Auth(userService *userUseCase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token no proporcionado",
			})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token no proporcionado",
			})
			return
		}

		user, err := userService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if errs.IsAuthError(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Error: "Token inválido o expirado",
				})
				return
			}

			logger.Error("Failed to resolve bearer token", map[string]any{
				"error":      err.Error(),
				"request_id": c.GetString(requestIDKey),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Error interno del servidor",
			})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// Principal returns the authenticated account stored by Auth
func Principal(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
