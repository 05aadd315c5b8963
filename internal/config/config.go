package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// ApplicationName is reported to the server and shows up in pg_stat_activity.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	ApplicationName    string
	ConnectTimeoutSec  int
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds settings for the on-disk document store.
// It is injected into the services so tests can point Root at a temporary directory.
type StorageConfig struct {
	// Root is the directory every participant folder is created under.
	Root string
	// PublicMount is the URL path the storage root is served from, e.g. "/uploads".
	PublicMount      string
	MaxUploadBytes   int64
	AllowedMIMETypes []string
	// CleanupConcurrency bounds parallel file removals during an operation cascade.
	CleanupConcurrency int
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	JWTSecret string
	Disabled  bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	// PublicBaseURL prefixes document file paths when building download links.
	// When empty the base is derived from the incoming request.
	PublicBaseURL string
	Timezone      string
	LogLevel      string
	Database      DatabaseConfig
	Storage       StorageConfig
	Auth          AuthConfig
}

// DefaultAllowedMIMETypes lists the document formats accepted for upload.
var DefaultAllowedMIMETypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"image/jpeg",
	"image/png",
	"image/gif",
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		Timezone:      getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "logidocs"),
			ConnectTimeoutSec:  getEnvInt("DB_CONNECT_TIMEOUT_SEC", 5),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Root:               getEnv("STORAGE_ROOT", "./uploads"),
			PublicMount:        getEnv("STORAGE_PUBLIC_MOUNT", "/uploads"),
			MaxUploadBytes:     getEnvInt64("STORAGE_MAX_UPLOAD_BYTES", 10*1024*1024),
			AllowedMIMETypes:   getEnvList("STORAGE_ALLOWED_MIME_TYPES", DefaultAllowedMIMETypes),
			CleanupConcurrency: getEnvInt("STORAGE_CLEANUP_CONCURRENCY", 4),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Disabled:  getEnvBool("AUTH_DISABLED", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
