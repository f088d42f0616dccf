package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-api/config"
	"booking-api/events"
	"booking-api/logging"
	"booking-api/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()

	// 1. Configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded", "port", cfg.Port, "db_driver", cfg.DBDriver, "upload_dir", cfg.UploadDir)

	// 2. Base de datos
	dsn := cfg.DatabaseURL
	if cfg.DBDriver == "mongo" {
		dsn = cfg.MongoURL
	}
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repositories.OpenStore(connectCtx, cfg.DBDriver, dsn, cfg.MongoDB)
	cancel()
	if err != nil {
		slog.Error("Failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected", "driver", cfg.DBDriver)

	// 3. Directorio de uploads
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// 4. Caché y eventos (opcionales)
	cache := repositories.NewPlaceCache(cfg.MemcachedHost, cfg.PlaceCacheTTL)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.PlacesQueue)
		if err != nil {
			slog.Error("Failed to create RabbitMQ publisher", "error", err)
			os.Exit(1)
		}
		publisher = p
	}

	// 5. Servidor HTTP
	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, store, cache, publisher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Booking API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down Booking API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down server", "error", err)
	}
	if err := publisher.Close(); err != nil {
		slog.Error("Error closing publisher", "error", err)
	}
	if err := store.Close(ctx); err != nil {
		slog.Error("Error closing database", "error", err)
	}

	slog.Info("Booking API shut down complete")
}
