package controllers

import (
	"errors"
	"net/http"

	"booking-api/dto"
	"booking-api/services"

	"github.com/gin-gonic/gin"
)

// UploadController maneja la subida de fotos (sin autenticación)
type UploadController struct {
	service services.UploadService
}

func NewUploadController(service services.UploadService) *UploadController {
	return &UploadController{service: service}
}

// UploadByLink maneja POST /upload-by-link
func (ctrl *UploadController) UploadByLink(c *gin.Context) {
	var req dto.UploadByLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	name, err := ctrl.service.UploadFromURL(c.Request.Context(), req.Link)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "download_error",
			Message: "Failed to download image",
		})
		return
	}

	c.JSON(http.StatusOK, name)
}

// Upload maneja POST /upload con el campo multipart "photos"
func (ctrl *UploadController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
		return
	}

	names, err := ctrl.service.UploadFiles(form.File["photos"])
	if err != nil {
		if errors.Is(err, services.ErrTooManyFiles) {
			respondError(c, http.StatusUnprocessableEntity, "validation_error", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "upload_error", err)
		return
	}

	c.JSON(http.StatusOK, names)
}
