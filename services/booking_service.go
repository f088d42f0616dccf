package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-api/domain"
	"booking-api/dto"
	"booking-api/events"
	"booking-api/repositories"
)

var ErrInvalidDate = errors.New("invalid date")

// Formatos aceptados para checkIn/checkOut (input type=date o ISO completo)
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// BookingService define las operaciones sobre reservas
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req dto.CreateBookingRequest) (*domain.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}

type bookingService struct {
	repo      repositories.BookingRepository
	publisher events.Publisher
}

func NewBookingService(repo repositories.BookingRepository, publisher events.Publisher) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateBooking crea la reserva a nombre del usuario autenticado
// No se verifica disponibilidad ni solapamiento con otras reservas
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req dto.CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	booking := &domain.Booking{
		PlaceID:        req.Place,
		UserID:         userID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          req.Price,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	publish(ctx, s.publisher, events.PlaceMessage{
		Action:    events.ActionCreate,
		PlaceID:   booking.PlaceID,
		BookingID: booking.ID,
	})
	return booking, nil
}

// GetUserBookings devuelve las reservas del usuario con el place embebido
func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.repo.GetByUserWithPlace(ctx, userID)
}

// parseDate devuelve nil para un valor vacío
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
