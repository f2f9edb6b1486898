// Package config loads the server configuration from an optional YAML file
// and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	envcfg "simple-board/pkg/config"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config is the complete server configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CORSAllowedOrigins empty disables CORS handling.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type DBConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	CircuitBreaker  bool          `yaml:"circuit_breaker"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	// RefreshSpec is the cron spec of the articles_total gauge refresh.
	RefreshSpec string `yaml:"refresh_spec"`
}

type TracingConfig struct {
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when neither file nor environment sets a value.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			MaxBodyBytes:    1 << 20,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Driver:          DriverPostgres,
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			CircuitBreaker:  true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			RefreshSpec: "@every 1m",
		},
		Tracing: TracingConfig{
			ServiceName: "simple-board",
			SampleRatio: 1.0,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides. The result is validated.
// The path parameter is expected to come from a trusted source (command-line flag or environment).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by the operator, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.MaxBodyBytes = envcfg.GetEnvInt64("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)
	c.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.CORSAllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.HTTP.CORSAllowedOrigins)

	c.DB.Driver = strings.ToLower(envcfg.GetEnvString("DB_DRIVER", c.DB.Driver))
	c.DB.DSN = envcfg.GetEnvString("DATABASE_URL", c.DB.DSN)
	c.DB.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", c.DB.MaxOpenConns)
	c.DB.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", c.DB.MaxIdleConns)
	c.DB.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.DB.ConnMaxLifetime)
	c.DB.ConnMaxIdleTime = envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.DB.ConnMaxIdleTime)
	c.DB.CircuitBreaker = envcfg.GetEnvBool("DB_CIRCUIT_BREAKER_ENABLED", c.DB.CircuitBreaker)

	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.Metrics.RefreshSpec = envcfg.GetEnvString("METRICS_REFRESH_SPEC", c.Metrics.RefreshSpec)

	c.Tracing.ServiceName = envcfg.GetEnvString("OTEL_SERVICE_NAME", c.Tracing.ServiceName)
	c.Tracing.SampleRatio = envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.HTTP.MaxBodyBytes))
	}
	if err := envcfg.ValidateDurationRange(c.HTTP.ShutdownTimeout, time.Second, 5*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("shutdown timeout: %w", err))
	}
	for name, d := range map[string]time.Duration{
		"read timeout":  c.HTTP.ReadTimeout,
		"write timeout": c.HTTP.WriteTimeout,
		"idle timeout":  c.HTTP.IdleTimeout,
	} {
		if err := envcfg.ValidatePositiveDuration(d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if c.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("dsn is required for driver %q", c.DB.Driver))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DB.Driver))
	}
	if c.DB.MaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("max open conns must be positive, got %d", c.DB.MaxOpenConns))
	}
	// zero disables the idle pool
	if c.DB.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("max idle conns must not be negative, got %d", c.DB.MaxIdleConns))
	}
	if err := envcfg.ValidatePositiveDuration(c.DB.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("conn max lifetime: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.DB.ConnMaxIdleTime); err != nil {
		errs = append(errs, fmt.Errorf("conn max idle time: %w", err))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if err := envcfg.ValidateCronSchedule(c.Metrics.RefreshSpec); err != nil {
		errs = append(errs, fmt.Errorf("metrics refresh spec: %w", err))
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing sample ratio must be within [0, 1], got %v", c.Tracing.SampleRatio))
	}

	return errors.Join(errs...)
}
