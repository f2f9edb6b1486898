// Package config provides environment variable helpers and value validators
// shared by the configuration loaders.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
//
// If the environment variable is not set, empty, or cannot be parsed as an integer,
// this function returns the default value and logs a warning.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, "integer", strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvInt64 is GetEnvInt for 64-bit values such as byte limits.
func GetEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		warnInvalid(key, valueStr, "integer", strconv.FormatInt(defaultValue, 10), err)
		return defaultValue
	}
	return value
}

// GetEnvFloat returns the value of an environment variable as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		warnInvalid(key, valueStr, "float", strconv.FormatFloat(defaultValue, 'g', -1, 64), err)
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted values are those of strconv.ParseBool: "1", "t", "true", "0", "f", "false"
// and their upper-case forms. Anything else returns the default and logs a warning.
//
// Example:
//
//	enabled := GetEnvBool("DB_CIRCUIT_BREAKER_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, "boolean", strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
//
// The value must be parseable by time.ParseDuration (e.g., "1m", "30s", "1h30m").
//
// Example:
//
//	timeout := GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, "duration", defaultValue.String(), err)
		return defaultValue
	}
	return value
}

func warnInvalid(key, value, kind, def string, err error) {
	slog.Warn("invalid "+kind+" value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", def),
		slog.String("error", err.Error()))
}

// GetEnvStringList returns a comma-separated list of strings from an environment variable.
// Values are trimmed and empty entries dropped. An unset or all-empty value returns the default.
//
// Example:
//
//	// CORS_ALLOWED_ORIGINS="https://a.example, https://b.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
