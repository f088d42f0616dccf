package controllers

import (
	"errors"
	"net/http"

	"booking-api/dto"
	"booking-api/middleware"
	"booking-api/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service services.BookingService
}

func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// CreateBooking maneja POST /bookings
// El usuario de la reserva es siempre el de la sesión
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "create_booking_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingResponse(booking))
}

// GetUserBookings maneja GET /bookings, con el place embebido
func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	bookings, err := ctrl.service.GetUserBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "get_bookings_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPopulatedBookingListResponse(bookings))
}
