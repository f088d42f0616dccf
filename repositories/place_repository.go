package repositories

import (
	"context"

	"booking-api/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceRepository define las operaciones sobre places
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
	GetAll(ctx context.Context) ([]domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
}

type gormPlaceRepository struct {
	db *gorm.DB
}

func NewGormPlaceRepository(db *gorm.DB) PlaceRepository {
	return &gormPlaceRepository{db: db}
}

func (r *gormPlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	if place.ID == "" {
		place.ID = uuid.NewString()
	}
	return gormError(r.db.WithContext(ctx).Create(place).Error)
}

func (r *gormPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	var place domain.Place
	if err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error; err != nil {
		return nil, gormError(err)
	}
	return &place, nil
}

func (r *gormPlaceRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	var places []domain.Place
	err := r.db.WithContext(ctx).Where("owner = ?", ownerID).Find(&places).Error
	return places, gormError(err)
}

// GetAll devuelve todos los places, sin paginar
func (r *gormPlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	var places []domain.Place
	err := r.db.WithContext(ctx).Find(&places).Error
	return places, gormError(err)
}

// Update guarda todos los campos del place
func (r *gormPlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	return gormError(r.db.WithContext(ctx).Save(place).Error)
}
