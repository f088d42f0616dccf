package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contiene la configuración de la aplicación
// Se lee una sola vez al arrancar y después no se modifica
type Config struct {
	Port string `envconfig:"PORT" default:"4000"`

	// Base de datos: "mongo" (por defecto), "mysql", "postgres" o "sqlite"
	DBDriver    string `envconfig:"DB_DRIVER" default:"mongo"`
	MongoURL    string `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	MongoDB     string `envconfig:"MONGO_DB" default:"booking"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"0"`
	BcryptCost   int    `envconfig:"BCRYPT_COST" default:"10"`

	ClientOrigin string `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5174"`

	// Uploads
	UploadDir     string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	UploadTimeout time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"30s"`

	// Caché de places
	MemcachedHost string        `envconfig:"MEMCACHED_HOST"`
	PlaceCacheTTL time.Duration `envconfig:"PLACE_CACHE_TTL" default:"5m"`

	// Eventos
	RabbitMQURL string `envconfig:"RABBITMQ_URL"`
	PlacesQueue string `envconfig:"PLACES_QUEUE" default:"places_queue"`
}

// LoadConfig carga el archivo .env (si existe) y después las variables de entorno
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TokenTTL devuelve la duración de los tokens; 0 significa que no expiran
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}
