package dto

import (
	"time"

	"booking-api/domain"
)

// CreateBookingRequest es el body de POST /bookings
// Las fechas llegan como "2006-01-02" o RFC3339. No hay campo "user":
// el usuario siempre sale del token
type CreateBookingRequest struct {
	Place          string  `json:"place"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Price          float64 `json:"price"`
}

// BookingResponse es la forma pública de una reserva
// Place es el id del place, o el place completo cuando se lista con populate
type BookingResponse struct {
	ID             string     `json:"_id"`
	Place          any        `json:"place"`
	User           string     `json:"user"`
	CheckIn        *time.Time `json:"checkIn"`
	CheckOut       *time.Time `json:"checkOut"`
	NumberOfGuests int        `json:"numberOfGuests"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Price          float64    `json:"price"`
}

// NewBookingResponse devuelve la reserva con el id del place
func NewBookingResponse(b *domain.Booking) BookingResponse {
	resp := newBookingResponse(b)
	resp.Place = b.PlaceID
	return resp
}

// NewPopulatedBookingResponse devuelve la reserva con el place embebido
// (null si el place ya no existe)
func NewPopulatedBookingResponse(b *domain.Booking) BookingResponse {
	resp := newBookingResponse(b)
	if b.Place != nil {
		resp.Place = NewPlaceResponse(b.Place)
	}
	return resp
}

func NewPopulatedBookingListResponse(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewPopulatedBookingResponse(&bookings[i]))
	}
	return out
}

func newBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		User:           b.UserID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		NumberOfGuests: b.NumberOfGuests,
		Name:           b.Name,
		Phone:          b.Phone,
		Price:          b.Price,
	}
}
