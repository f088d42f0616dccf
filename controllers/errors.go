package controllers

import (
	"booking-api/dto"

	"github.com/gin-gonic/gin"
)

// respondError registra el error en el contexto (lo loguea RequestLogger)
// y responde con el formato común de errores
func respondError(c *gin.Context, status int, code string, err error) {
	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}
