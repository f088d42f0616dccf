package dto

import "booking-api/domain"

// RegisterRequest es lo que el frontend envía cuando alguien se registra
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest representa el request para login (solo por email)
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse es la forma pública de un usuario
// El hash de la contraseña nunca se incluye
type UserResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserResponse arma la respuesta a partir del usuario del dominio
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
