package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Test maneja GET /test
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, "test ok")
}

// HealthCheck maneja GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "booking-api",
	})
}
