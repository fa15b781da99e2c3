package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Archive  ArchiveConfig
	Tracing  TracingConfig
	LogLevel string
	// LogFormat is "json" or "console".
	LogFormat string
}

type ServerConfig struct {
	Port            string
	BodyLimitMB     int
	CORSOrigins     string
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	User           string
	Password       string
	Host           string
	Database       string
	URI            string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// ArchiveConfig describes the optional MinIO bucket uploaded images are mirrored to.
// An empty Endpoint disables mirroring.
type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Workers   int
}

type TracingConfig struct {
	CollectorHost string
	ServiceName   string
}

// Load reads configuration from the environment, after loading a .env file when one exists.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			BodyLimitMB:     env.Int("BODY_LIMIT_MB", 10),
			CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
			ShutdownTimeout: env.Duration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Mongo: MongoConfig{
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASS"),
			Host:           getEnv("DB_HOST", "cluster0.quv1r.mongodb.net"),
			Database:       getEnv("DB_NAME", "madicinebd_DB"),
			URI:            os.Getenv("MONGO_URI"),
			ConnectTimeout: env.Duration("CONNECT_TIMEOUT", 10*time.Second),
			QueryTimeout:   env.Duration("DB_TIMEOUT", 10*time.Second),
		},
		Archive: ArchiveConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "medicine-images"),
			UseSSL:    env.Bool("MINIO_USE_SSL", false),
			Workers:   env.Int("ARCHIVE_WORKERS", 4),
		},
		Tracing: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
			ServiceName:   getEnv("SERVICE_NAME", "medicine-api"),
		},
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := env.Err(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive")
	}

	if c.Mongo.URI == "" && (c.Mongo.User == "" || c.Mongo.Password == "") {
		return fmt.Errorf("DB_USER and DB_PASS are required when MONGO_URI is not set")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.LogFormat)
	}

	if c.Archive.Enabled() && c.Archive.Workers <= 0 {
		return fmt.Errorf("ARCHIVE_WORKERS must be positive")
	}

	return nil
}

// ConnectionURI returns MONGO_URI when set, otherwise the Atlas SRV URI built
// from the credentials.
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(m.User, m.Password),
		Host:     m.Host,
		Path:     "/myFirstDatabase",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func (a ArchiveConfig) Enabled() bool {
	return a.Endpoint != ""
}

func (t TracingConfig) Enabled() bool {
	return t.CollectorHost != ""
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader parses typed variables and keeps every malformed value it met.
type envReader struct {
	errs []error
}

func (r *envReader) fail(key, value, want string) {
	r.errs = append(r.errs, fmt.Errorf("%s=%q is not a valid %s", key, value, want))
}

func (r *envReader) Int(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.fail(key, valueStr, "integer")
		return defaultValue
	}
	return value
}

func (r *envReader) Bool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.fail(key, valueStr, "boolean")
		return defaultValue
	}
	return value
}

// Duration accepts Go durations ("15s") and bare seconds ("15").
func (r *envReader) Duration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	r.fail(key, valueStr, "duration")
	return defaultValue
}

// Err joins every parse failure, or returns nil.
func (r *envReader) Err() error {
	return errors.Join(r.errs...)
}
