package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"travel/internal/domain"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Auth     AuthConfig
	Site     SiteConfig
	Upload   UploadConfig
	Geocode  GeocodeConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxUploadMB  int64
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// AuthConfig holds administrator session configuration.
type AuthConfig struct {
	JWTSecret     string
	SessionExpiry time.Duration
}

// SiteConfig holds the agency branding shown on pages and in outbound messages.
type SiteConfig struct {
	AgencyName     string
	Currency       string
	WhatsAppNumber string
	PhoneNumber    string
	MessageVariant domain.MessageVariant
}

// UploadConfig holds the image host configuration.
type UploadConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// GeocodeConfig holds the place search configuration.
type GeocodeConfig struct {
	URL       string
	UserAgent string
}

// CORSConfig holds cross-origin configuration for the browser client.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
	File   string // Optional rotating log file
}

// Load loads configuration from environment variables. A .env file, when present, is read first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			MaxUploadMB:  int64(getIntEnv("SERVER_MAX_UPLOAD_MB", 32)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "travel"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "travel-site"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			SessionExpiry: getDurationEnv("SESSION_EXPIRY", 12*time.Hour),
		},
		Site: SiteConfig{
			AgencyName:     getEnv("AGENCY_NAME", "AquaPeak Travels"),
			Currency:       getEnv("CURRENCY_SYMBOL", "₹"),
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "919868385777"),
			PhoneNumber:    getEnv("PHONE_NUMBER", "+919868385777"),
			MessageVariant: domain.MessageVariant(strings.ToLower(getEnv("BOOKING_MESSAGE_VARIANT", string(domain.VariantSingleOption)))),
		},
		Upload: UploadConfig{
			URL:     getEnv("IMAGE_HOST_URL", "https://api.imgbb.com/1/upload"),
			APIKey:  getEnv("IMAGE_HOST_API_KEY", ""),
			Timeout: getDurationEnv("IMAGE_HOST_TIMEOUT", 30*time.Second),
		},
		Geocode: GeocodeConfig{
			URL:       getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org/search"),
			UserAgent: getEnv("GEOCODE_USER_AGENT", "travel-site-admin/1.0"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.SessionExpiry <= 0 {
		return errors.New("SESSION_EXPIRY must be positive")
	}
	if c.Site.WhatsAppNumber == "" {
		return errors.New("WHATSAPP_NUMBER is required")
	}
	if strings.ContainsAny(c.Site.WhatsAppNumber, "+ -") {
		return errors.New("WHATSAPP_NUMBER must contain digits only, with country code")
	}
	switch c.Site.MessageVariant {
	case domain.VariantSingleOption, domain.VariantAllOptions:
	default:
		return fmt.Errorf("BOOKING_MESSAGE_VARIANT must be %q or %q", domain.VariantSingleOption, domain.VariantAllOptions)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
