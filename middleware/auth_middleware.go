package middleware

import (
	"net/http"

	"booking-api/dto"
	"booking-api/utils"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie es el nombre de la cookie que lleva el token de sesión
	TokenCookie = "token"

	userIDKey = "user_id"
	emailKey  = "email"
)

// AuthMiddleware valida el token de la cookie "token"
// Si es válido guarda el usuario en el contexto. Si falta o es inválido
// responde 500 con el error, igual que cualquier otra falla del endpoint
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			abortAuthError(c, "token cookie required")
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			abortAuthError(c, "invalid token")
			return
		}

		// Así los endpoints saben quién hizo la request
		c.Set(userIDKey, claims.ID)
		c.Set(emailKey, claims.Email)

		c.Next()
	}
}

// UserID devuelve el usuario autenticado ("" si la ruta no pasa por AuthMiddleware)
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func abortAuthError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}
