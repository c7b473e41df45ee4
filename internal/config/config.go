package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Post sources
const (
	SourceAPI      = "api"
	SourceDB       = "db"
	SourceMarkdown = "markdown"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	AppTagline  string
	ContentPath string

	// Posts
	PostSource        string // "api", "db" or "markdown"
	ContentAPIURL     string
	ContentAPITimeout time.Duration

	// Database (only used when PostSource is "db")
	DBDriver     string
	DBConnection string

	// Rendering
	PlaceholderImage string
	DateTimezone     string
	DefaultLocale    string

	// Author card
	AuthorName   string
	AuthorBio    string
	AuthorAvatar string

	// Rate limiting for post pages (per client IP)
	RateLimitRPS   float64
	RateLimitBurst int

	// Observability (optional)
	SentryDSN string

	// Storage (optional, S3-compatible). Hero images given as s3://<key> are presigned.
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Acme Blog"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		AppTagline:  envString("APP_TAGLINE", "Notes, stories and updates"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Posts
		PostSource:        envString("POST_SOURCE", SourceAPI),
		ContentAPIURL:     envString("CONTENT_API_URL", ""),
		ContentAPITimeout: envDuration("CONTENT_API_TIMEOUT", 5*time.Second),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/posts.db?_pragma=journal_mode(WAL)"),

		// Rendering
		PlaceholderImage: envString("PLACEHOLDER_IMAGE", "/assets/img/placeholder.svg"),
		DateTimezone:     envString("DATE_TIMEZONE", "UTC"),
		DefaultLocale:    envString("DEFAULT_LOCALE", "en-US"),

		// Author card
		AuthorName:   envString("AUTHOR_NAME", "The Editors"),
		AuthorBio:    envString("AUTHOR_BIO", "Writing about software, design and the web."),
		AuthorAvatar: envString("AUTHOR_AVATAR", "/assets/img/avatar.svg"),

		// Rate limiting
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 20),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 24*time.Hour),
	}

	if cfg.PostSource == SourceAPI && cfg.ContentAPIURL == "" {
		if cfg.IsProduction() {
			slog.Error("production deployment requires CONTENT_API_URL when POST_SOURCE=api",
				"hint", "set POST_SOURCE=markdown or POST_SOURCE=db to serve posts locally")
			os.Exit(1)
		}
		slog.Warn("CONTENT_API_URL not set, falling back to markdown posts", "content_path", cfg.ContentPath)
		cfg.PostSource = SourceMarkdown
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Credentials and connection strings are excluded.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		AppTagline: c.AppTagline,

		PlaceholderImage: c.PlaceholderImage,
		DefaultLocale:    c.DefaultLocale,

		AuthorName:   c.AuthorName,
		AuthorBio:    c.AuthorBio,
		AuthorAvatar: c.AuthorAvatar,

		S3Endpoint: c.S3Endpoint, // Needed for CSP img-src
	}
}
