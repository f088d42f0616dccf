package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-api/domain"
	"booking-api/dto"
)

func TestCreateBooking_StampsRequester(t *testing.T) {
	places := newMockPlaceRepository()
	repo := newMockBookingRepository(places)
	service := NewBookingService(repo, &recordingPublisher{})

	booking, err := service.CreateBooking(context.Background(), "guest-1", dto.CreateBookingRequest{
		Place:          "place-1",
		CheckIn:        "2026-05-01",
		CheckOut:       "2026-05-03T10:00:00Z",
		NumberOfGuests: 2,
		Name:           "Guest",
		Phone:          "555",
		Price:          300,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if booking.UserID != "guest-1" {
		t.Errorf("Expected user guest-1, got %s", booking.UserID)
	}
	if booking.CheckIn == nil || booking.CheckOut == nil {
		t.Fatalf("Expected both dates set, got %v / %v", booking.CheckIn, booking.CheckOut)
	}
	if !booking.CheckIn.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected checkIn %v", booking.CheckIn)
	}
	if booking.CheckOut.Hour() != 10 {
		t.Errorf("Unexpected checkOut %v", booking.CheckOut)
	}
}

func TestCreateBooking_NoDates(t *testing.T) {
	service := NewBookingService(newMockBookingRepository(newMockPlaceRepository()), &recordingPublisher{})

	booking, err := service.CreateBooking(context.Background(), "guest-1", dto.CreateBookingRequest{Place: "place-1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if booking.CheckIn != nil || booking.CheckOut != nil {
		t.Errorf("Expected nil dates, got %v / %v", booking.CheckIn, booking.CheckOut)
	}
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	service := NewBookingService(newMockBookingRepository(newMockPlaceRepository()), &recordingPublisher{})

	_, err := service.CreateBooking(context.Background(), "guest-1", dto.CreateBookingRequest{CheckIn: "tomorrow"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
}

// No hay detección de solapamiento: dos reservas iguales se aceptan
func TestCreateBooking_NoOverlapCheck(t *testing.T) {
	repo := newMockBookingRepository(newMockPlaceRepository())
	service := NewBookingService(repo, &recordingPublisher{})
	req := dto.CreateBookingRequest{Place: "place-1", CheckIn: "2026-05-01", CheckOut: "2026-05-03"}

	for i := 0; i < 2; i++ {
		if _, err := service.CreateBooking(context.Background(), "guest-1", req); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if len(repo.bookings) != 2 {
		t.Errorf("Expected 2 bookings, got %d", len(repo.bookings))
	}
}

func TestGetUserBookings_WithPlace(t *testing.T) {
	ctx := context.Background()
	places := newMockPlaceRepository()
	service := NewBookingService(newMockBookingRepository(places), &recordingPublisher{})

	place := &domain.Place{Owner: "owner-a", Title: "Cabin"}
	places.Create(ctx, place)

	service.CreateBooking(ctx, "guest-1", dto.CreateBookingRequest{Place: place.ID})
	service.CreateBooking(ctx, "guest-2", dto.CreateBookingRequest{Place: place.ID})

	bookings, err := service.GetUserBookings(ctx, "guest-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("Expected 1 booking, got %d", len(bookings))
	}
	if bookings[0].Place == nil || bookings[0].Place.Title != "Cabin" {
		t.Errorf("Expected embedded place, got %+v", bookings[0].Place)
	}
}
