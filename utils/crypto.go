package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashea contraseñas con bcrypt
// El costo se configura una vez al arrancar (BCRYPT_COST)
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher crea un hasher; si el costo es inválido usa bcrypt.DefaultCost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword hashea una contraseña usando bcrypt
// Cada llamada usa una sal distinta, así que la misma contraseña da hashes distintos
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// CheckPasswordHash verifica si una contraseña coincide con el hash
func (h *PasswordHasher) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
