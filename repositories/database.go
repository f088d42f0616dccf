package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-api/domain"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store agrupa los tres repositorios sobre una misma conexión
type Store struct {
	Users    UserRepository
	Places   PlaceRepository
	Bookings BookingRepository

	close func(ctx context.Context) error
}

// Close cierra la conexión subyacente
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore abre la base indicada por driver: "mongo", "mysql", "postgres" o "sqlite"
func OpenStore(ctx context.Context, driver, dsn, mongoDB string) (*Store, error) {
	if driver == "mongo" {
		return OpenMongoStore(ctx, dsn, mongoDB)
	}

	db, err := OpenGorm(driver, dsn)
	if err != nil {
		return nil, err
	}
	return NewGormStore(db), nil
}

// OpenGorm conecta con una base SQL y ejecuta las migraciones
func OpenGorm(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		// Las reservas pueden apuntar a places inexistentes
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	// GORM crea las tablas si no existen
	if err := db.AutoMigrate(&domain.User{}, &domain.Place{}, &domain.Booking{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// NewGormStore arma los repositorios SQL
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewGormUserRepository(db),
		Places:   NewGormPlaceRepository(db),
		Bookings: NewGormBookingRepository(db),
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// OpenMongoStore conecta con MongoDB, verifica la conexión y crea los índices
func OpenMongoStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	store := NewMongoStore(db)
	store.close = client.Disconnect
	return store, nil
}

// NewMongoStore arma los repositorios sobre una base Mongo ya conectada
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:    NewMongoUserRepository(db),
		Places:   NewMongoPlaceRepository(db),
		Bookings: NewMongoBookingRepository(db),
	}
}

// EnsureMongoIndexes crea el índice único de email y los índices de búsqueda por usuario
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		usersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		placesCollection:   {Keys: bson.D{{Key: "owner", Value: 1}}},
		bookingsCollection: {Keys: bson.D{{Key: "user", Value: 1}}},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}
