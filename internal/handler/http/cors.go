package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins. "*" allows any origin.
	// Empty disables CORS handling.
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	// Default: ["GET", "POST", "PUT", "DELETE", "OPTIONS"]
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached, in seconds.
	MaxAge int
}

// DefaultCORSConfig returns the methods and headers the article API uses.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

func (c CORSConfig) allowed(origin string) bool {
	return slices.Contains(c.AllowedOrigins, "*") || slices.Contains(c.AllowedOrigins, origin)
}

// CORS returns middleware that handles cross-origin requests.
//
// Behavior:
//   - Requests without an Origin header pass through untouched.
//   - Disallowed origins are logged and passed through without CORS headers, so the browser blocks the response.
//   - Allowed preflight (OPTIONS) requests get the preflight headers and 204 without reaching next.
//   - Allowed actual requests get Access-Control-Allow-Origin and continue.
func CORS(cfg CORSConfig, logger *slog.Logger) Middleware {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		if len(cfg.AllowedOrigins) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !cfg.allowed(origin) {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
