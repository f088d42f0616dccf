package main

import (
	"booking-api/config"
	"booking-api/controllers"
	"booking-api/events"
	"booking-api/middleware"
	"booking-api/repositories"
	"booking-api/services"
	"booking-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter arma las capas (service → controller) y define las rutas
func setupRouter(cfg *config.Config, store *repositories.Store, cache repositories.PlaceCache, publisher events.Publisher) *gin.Engine {
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	userController := controllers.NewUserController(services.NewUserService(store.Users, hasher, tokens))
	uploadController := controllers.NewUploadController(services.NewUploadService(cfg.UploadDir, cfg.UploadTimeout))
	placeController := controllers.NewPlaceController(services.NewPlaceService(store.Places, cache, publisher))
	bookingController := controllers.NewBookingController(services.NewBookingService(store.Bookings, publisher))

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS(cfg.ClientOrigin))

	router.Static("/uploads", cfg.UploadDir)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", controllers.HealthCheck)
	router.GET("/test", controllers.Test)

	// Rutas PÚBLICAS
	router.POST("/register", userController.Register)
	router.POST("/login", userController.Login)
	router.GET("/profile", userController.Profile)
	router.POST("/logout", userController.Logout)
	router.POST("/upload-by-link", uploadController.UploadByLink)
	router.POST("/upload", uploadController.Upload)
	router.GET("/places", placeController.GetAllPlaces)
	router.GET("/places/:id", placeController.GetPlace)

	// Rutas PROTEGIDAS (requieren la cookie "token")
	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(tokens))
	{
		auth.POST("/places", placeController.CreatePlace)
		auth.PUT("/places", placeController.UpdatePlace)
		auth.GET("/user-places", placeController.GetUserPlaces)
		auth.POST("/bookings", bookingController.CreateBooking)
		auth.GET("/bookings", bookingController.GetUserBookings)
	}

	return router
}
