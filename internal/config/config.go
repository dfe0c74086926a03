package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the process environment
// (optionally seeded from a .env file).
type Config struct {
	Port        string `env:"PORT" envDefault:"8787"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" envDefault:"framez"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"framez.log"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	MediaProvider          string   `env:"MEDIA_PROVIDER" envDefault:"cloudinary"`
	AWSRegion              string   `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSBucket              string   `env:"AWS_BUCKET"`
	CDNBaseURL             string   `env:"CDN_BASE_URL"`
	CloudinaryCloudName    string   `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryUploadPreset string   `env:"CLOUDINARY_UPLOAD_PRESET" envDefault:"framez"`
	MaxImageBytes          int64    `env:"MAX_IMAGE_BYTES" envDefault:"10485760"`
	ProfilePictures        []string `env:"PROFILE_PICTURES" envSeparator:","`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	OTelEnabled      bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTelSamplingRate float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// DefaultProfilePictures is the preset avatar list offered when
// PROFILE_PICTURES is not set.
var DefaultProfilePictures = []string{
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-1.png",
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-2.png",
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-3.png",
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-4.png",
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-5.png",
	"https://res.cloudinary.com/framez/image/upload/v1/avatars/avatar-6.png",
}

// Load reads the optional env files and parses the environment into a Config.
// Missing env files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overrides variables already set in the environment
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	c.MediaProvider = strings.ToLower(strings.TrimSpace(c.MediaProvider))
	switch c.MediaProvider {
	case "s3", "cloudinary":
	default:
		return fmt.Errorf("MEDIA_PROVIDER must be \"s3\" or \"cloudinary\", got %q", c.MediaProvider)
	}

	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be \"postgres\" or \"sqlite\", got %q", c.DatabaseDriver)
	}

	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be positive")
	}
	if len(c.ProfilePictures) == 0 {
		c.ProfilePictures = DefaultProfilePictures
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// DSN returns the database connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseDriver == "sqlite" {
		return "framez.db"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
