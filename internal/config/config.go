// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Audit   AuditConfig
	Session SessionConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DatasetConfig locates the input file and names its timestamp column.
type DatasetConfig struct {
	// Path is the CSV file to load (required)
	Path string `env:"DATASET_PATH" required:"true"`

	// TimestampColumn is parsed to dates at load time (default: Crash Date/Time)
	TimestampColumn string `env:"DATASET_TIMESTAMP_COLUMN" default:"Crash Date/Time"`
}

// AuditConfig holds the column-role mapping and business-rule knobs
// for the health audit, quality breakdown, and insights.
type AuditConfig struct {
	// IdentifierColumn is the logical row identifier (default: Report Number)
	IdentifierColumn string `env:"AUDIT_IDENTIFIER_COLUMN" default:"Report Number"`

	// YearColumn is the vintage-year column (default: Vehicle Year)
	YearColumn string `env:"AUDIT_YEAR_COLUMN" default:"Vehicle Year"`

	// KeyFields is a comma-separated list of analysis-critical columns
	KeyFields []string `env:"AUDIT_KEY_FIELDS" default:"Report Number,Crash Date/Time,Latitude,Longitude"`

	// CategoryPriority lists candidate category columns for insights, first match wins
	CategoryPriority []string `env:"AUDIT_CATEGORY_PRIORITY" default:"Collision Type,Agency Name"`

	// LatitudeColumn and LongitudeColumn feed the geo-accuracy check
	LatitudeColumn  string `env:"AUDIT_LATITUDE_COLUMN" default:"Latitude"`
	LongitudeColumn string `env:"AUDIT_LONGITUDE_COLUMN" default:"Longitude"`

	// ParkedColumn and MovementColumn feed the consistency check
	ParkedColumn   string `env:"AUDIT_PARKED_COLUMN" default:"Parked Vehicle"`
	MovementColumn string `env:"AUDIT_MOVEMENT_COLUMN" default:"Vehicle Movement"`

	// StalenessYears triggers the outdated-data warning (default: 4)
	StalenessYears int `env:"AUDIT_STALENESS_YEARS" default:"4"`

	// DuplicatePenalty is deducted once when identifiers repeat (default: 20)
	DuplicatePenalty int `env:"AUDIT_DUPLICATE_PENALTY" default:"20"`

	// FuturePenalty is deducted once when timestamps lie in the future (default: 10)
	FuturePenalty int `env:"AUDIT_FUTURE_PENALTY" default:"10"`

	// KeyFieldPenalty is deducted per key field over its missing threshold (default: 5)
	KeyFieldPenalty int `env:"AUDIT_KEY_FIELD_PENALTY" default:"5"`

	// MissingPenalty is deducted per ordinary column over the warning threshold (default: 1)
	MissingPenalty int `env:"AUDIT_MISSING_PENALTY" default:"1"`

	// YearPenalty is deducted once for out-of-range year values (default: 5)
	YearPenalty int `env:"AUDIT_YEAR_PENALTY" default:"5"`

	// KeyFieldMissingPct is the key-field critical threshold in percent (default: 1.0)
	KeyFieldMissingPct float64 `env:"AUDIT_KEY_FIELD_MISSING_PCT" default:"1.0"`

	// WarnMissingPct is the ordinary-column warning threshold in percent (default: 5.0)
	WarnMissingPct float64 `env:"AUDIT_WARN_MISSING_PCT" default:"5.0"`

	// MinYear is the oldest acceptable vintage year (default: 1900)
	MinYear int `env:"AUDIT_MIN_YEAR" default:"1900"`
}

// SessionConfig holds per-user session settings.
type SessionConfig struct {
	// TTL is how long an idle session survives (default: 1h)
	TTL time.Duration `env:"SESSION_TTL" default:"1h"`

	// SweepInterval is how often expired sessions are evicted (default: 5m)
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
