package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oksasatya/go-user-lookup/internal/domain/repository"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Logging: line ("[LEVEL] message"), text or json
	LogFormat string
	LogLevel  string

	// Record source: mock or postgres
	RecordSource string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Redis (empty addr disables the record cache and rate limiting)
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Client IP resolution: proxies allowed to set X-Forwarded-For, and an
	// optional edge platform (cloudflare, google or a header name)
	TrustedProxies  string // comma-separated IPs or CIDRs
	TrustedPlatform string

	// Rate limiting on /api/users
	RateLimitPerMinute    int
	RateLimitAllowPrivate bool

	// Migrations
	MigrationsDir string
	RunMigrations bool

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

const defaultCORSOrigins = "https://ocelottraining.com,https://www.ocelottraining.com,https://app.ocelottraining.com"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "go-user-lookup"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		LogFormat: getenv("LOG_FORMAT", "line"),
		LogLevel:  getenv("LOG_LEVEL", "info"),

		RecordSource: strings.ToLower(getenv("RECORD_SOURCE", "mock")),

		DBHost:        getenv("DB_HOST", repository.DefaultHost),
		DBPort:        getenv("DB_PORT", repository.DefaultPort),
		DBUser:        getenv("DB_USER", repository.DefaultUser),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", repository.DefaultName),
		DBSSLMode:     getenv("DB_SSLMODE", repository.DefaultSSLMode),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		ProfileCacheTTL: getdur("PROFILE_CACHE_TTL", 5*time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),

		TrustedProxies:  getenv("TRUSTED_PROXIES", ""),
		TrustedPlatform: getenv("TRUSTED_PLATFORM", ""),

		RateLimitPerMinute:    getint("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitAllowPrivate: getbool("RATE_LIMIT_ALLOW_PRIVATE", false),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),
		RunMigrations: getbool("RUN_MIGRATIONS", false),

		// Debug metrics toggle (default true to preserve existing behavior)
		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		// HTTP access log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Source returns the record source settings derived from the DB_* variables
func (c *Config) Source() repository.SourceConfig {
	return repository.SourceConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// PostgresDSN returns a DSN compatible with pgx
func (c *Config) PostgresDSN() string {
	return c.Source().DSN()
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// TrustedProxyList returns the trusted proxies as slice (empty trusts none)
func (c *Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
