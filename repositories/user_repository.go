package repositories

import (
	"context"
	"errors"

	"booking-api/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository define las operaciones sobre usuarios
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// gormUserRepository guarda usuarios en una base SQL
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository crea el repositorio SQL de usuarios
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// Create inserta un nuevo usuario; el ID se genera si viene vacío
func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return gormError(r.db.WithContext(ctx).Create(user).Error)
}

// GetByID busca un usuario por su ID
func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, gormError(err)
	}
	return &user, nil
}

// GetByEmail busca un usuario por su email (login y registro)
func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, gormError(err)
	}
	return &user, nil
}

// gormError traduce los errores de GORM a los del paquete
func gormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
