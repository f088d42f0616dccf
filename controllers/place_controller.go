package controllers

import (
	"errors"
	"net/http"

	"booking-api/dto"
	"booking-api/middleware"
	"booking-api/services"

	"github.com/gin-gonic/gin"
)

// PlaceController maneja los endpoints de places
type PlaceController struct {
	service services.PlaceService
}

func NewPlaceController(service services.PlaceService) *PlaceController {
	return &PlaceController{service: service}
}

// CreatePlace maneja POST /places (requiere sesión)
func (ctrl *PlaceController) CreatePlace(c *gin.Context) {
	var req dto.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	place, err := ctrl.service.CreatePlace(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "create_place_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlaceResponse(place))
}

// GetUserPlaces maneja GET /user-places
func (ctrl *PlaceController) GetUserPlaces(c *gin.Context) {
	places, err := ctrl.service.GetUserPlaces(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "get_places_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlaceListResponse(places))
}

// GetPlace maneja GET /places/:id (público)
// Un ID inexistente también es 500, no hay 404 para places
func (ctrl *PlaceController) GetPlace(c *gin.Context) {
	place, err := ctrl.service.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		code := "get_place_error"
		if errors.Is(err, services.ErrPlaceNotFound) {
			code = "place_not_found"
		}
		respondError(c, http.StatusInternalServerError, code, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlaceResponse(place))
}

// UpdatePlace maneja PUT /places
// Solo el owner puede modificar el place; si no, 403
func (ctrl *PlaceController) UpdatePlace(c *gin.Context) {
	var req dto.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	err := ctrl.service.UpdatePlace(c.Request.Context(), middleware.UserID(c), req)
	switch {
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden", err)
		return
	case errors.Is(err, services.ErrPlaceNotFound):
		respondError(c, http.StatusInternalServerError, "place_not_found", err)
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "update_place_error", err)
		return
	}

	c.JSON(http.StatusOK, "ok")
}

// GetAllPlaces maneja GET /places (público, sin paginar)
func (ctrl *PlaceController) GetAllPlaces(c *gin.Context) {
	places, err := ctrl.service.GetAllPlaces(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "get_places_error", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlaceListResponse(places))
}
