package controllers

import (
	"errors"
	"net/http"

	"booking-api/dto"
	"booking-api/middleware"
	"booking-api/services"

	"github.com/gin-gonic/gin"
)

// UserController maneja registro, login, perfil y logout
type UserController struct {
	service services.UserService
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// Register maneja POST /register
// Cualquier error (email duplicado, body inválido) es 422
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	user, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "create_user_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Login maneja POST /login
// 404 si el email no existe, 422 si la contraseña no coincide
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "user_not_found", err)
		return
	case errors.Is(err, services.ErrWrongPassword):
		respondError(c, http.StatusUnprocessableEntity, "login_error", err)
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "login_error", err)
		return
	}

	setTokenCookie(c, result.Token, 0)
	c.JSON(http.StatusOK, dto.NewUserResponse(result.User))
}

// Profile maneja GET /profile
// Ante cualquier falla responde 200 con null: el frontend lo usa para saber si hay sesión
func (ctrl *UserController) Profile(c *gin.Context) {
	token, _ := c.Cookie(middleware.TokenCookie)

	user, err := ctrl.service.GetProfile(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Logout maneja POST /logout; siempre responde true
func (ctrl *UserController) Logout(c *gin.Context) {
	setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, true)
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", false, true)
}
