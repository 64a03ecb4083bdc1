package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidHolidaySource = errors.New("config: holiday source must be calendar or sqlite")
	ErrMissingSQLitePath    = errors.New("config: sqlite holiday source requires WORKDAYS_SQLITE_PATH")
	ErrInvalidYearSpan      = errors.New("config: first year must not exceed last year")
	ErrInvalidSamplePct     = errors.New("config: trace sample percentage must be between 0.0 and 1.0")
	ErrInvalidRateLimit     = errors.New("config: rate limit must not be negative")
)

// Holiday source backends.
const (
	SourceCalendar = "calendar"
	SourceSQLite   = "sqlite"
)

// Defaults applied by Load when the environment is silent.
const (
	DefaultAddr          = ":8080"
	DefaultHolidaySource = SourceCalendar
	DefaultCacheCapacity = 1000
	DefaultFirstYear     = 2000
	DefaultLastYear      = 2049
	DefaultLogLevel      = "info"
	DefaultRateBurst     = 20
)

// Config holds the full daemon configuration.
type Config struct {
	// Addr is the listen address.
	Addr string

	// HolidaySource selects the holiday oracle: calendar or sqlite.
	HolidaySource string

	// SQLitePath is the database path for the sqlite source.
	SQLitePath string

	// CacheCapacity is the count-cache entry limit.
	CacheCapacity int

	// FirstYear and LastYear bound the supported query span.
	FirstYear int
	LastYear  int

	// APIKeys are the accepted static API keys. Empty disables API key auth.
	APIKeys []string

	// JWTSecret is the HS256 signing secret. Empty disables JWT auth.
	JWTSecret string

	// JWTIssuer and JWTAudience constrain accepted tokens when set.
	JWTIssuer   string
	JWTAudience string

	// RateLimit is the sustained requests-per-second allowance per client.
	// Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the burst allowance when rate limiting is on.
	RateBurst int

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string

	// TraceExporter selects the span exporter: otlp, stdout or none.
	TraceExporter string

	// TraceSamplePct is the trace sampling ratio, 0.0 to 1.0.
	TraceSamplePct float64

	// MetricsExporter selects the metrics backend: otlp, prometheus,
	// stdout or none.
	MetricsExporter string
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Addr:            envString("WORKDAYS_ADDR", DefaultAddr),
		HolidaySource:   envString("WORKDAYS_HOLIDAY_SOURCE", DefaultHolidaySource),
		SQLitePath:      envString("WORKDAYS_SQLITE_PATH", ""),
		LogLevel:        envString("WORKDAYS_LOG_LEVEL", DefaultLogLevel),
		TraceExporter:   envString("WORKDAYS_TRACE_EXPORTER", "none"),
		MetricsExporter: envString("WORKDAYS_METRICS_EXPORTER", "none"),
		JWTIssuer:       envString("WORKDAYS_JWT_ISSUER", ""),
		JWTAudience:     envString("WORKDAYS_JWT_AUDIENCE", ""),
	}

	var err error
	if cfg.CacheCapacity, err = envInt("WORKDAYS_CACHE_CAPACITY", DefaultCacheCapacity); err != nil {
		return Config{}, err
	}
	if cfg.FirstYear, err = envInt("WORKDAYS_FIRST_YEAR", DefaultFirstYear); err != nil {
		return Config{}, err
	}
	if cfg.LastYear, err = envInt("WORKDAYS_LAST_YEAR", DefaultLastYear); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = envInt("WORKDAYS_RATE_BURST", DefaultRateBurst); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = envFloat("WORKDAYS_RATE_LIMIT", 0); err != nil {
		return Config{}, err
	}
	if cfg.TraceSamplePct, err = envFloat("WORKDAYS_TRACE_SAMPLE_PCT", 1.0); err != nil {
		return Config{}, err
	}

	// Secret-bearing values may reference other environment variables.
	keys, err := envSecret("WORKDAYS_API_KEYS")
	if err != nil {
		return Config{}, err
	}
	for _, key := range strings.Split(keys, ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.APIKeys = append(cfg.APIKeys, key)
		}
	}

	if cfg.JWTSecret, err = envSecret("WORKDAYS_JWT_SECRET"); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	switch c.HolidaySource {
	case SourceCalendar:
	case SourceSQLite:
		if c.SQLitePath == "" {
			return ErrMissingSQLitePath
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidHolidaySource, c.HolidaySource)
	}

	if c.FirstYear > c.LastYear {
		return fmt.Errorf("%w: %d > %d", ErrInvalidYearSpan, c.FirstYear, c.LastYear)
	}
	if c.TraceSamplePct < 0 || c.TraceSamplePct > 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidSamplePct, c.TraceSamplePct)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidRateLimit, c.RateLimit)
	}
	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func envSecret(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", nil
	}
	expanded, err := ExpandEnvStrict(v)
	if err != nil {
		return "", fmt.Errorf("config: %s: %w", key, err)
	}
	return expanded, nil
}
