package repositories

import (
	"context"

	"booking-api/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository define las operaciones sobre reservas
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByUserWithPlace devuelve las reservas del usuario con Booking.Place cargado
	GetByUserWithPlace(ctx context.Context, userID string) ([]domain.Booking, error)
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	// Omit evita que GORM intente crear el place asociado
	return gormError(r.db.WithContext(ctx).Omit("Place").Create(booking).Error)
}

func (r *gormBookingRepository) GetByUserWithPlace(ctx context.Context, userID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Place").
		Where("user_id = ?", userID).
		Find(&bookings).Error
	return bookings, gormError(err)
}
