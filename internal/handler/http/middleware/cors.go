// Package middleware provides the CORS middleware for browser clients.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// OriginValidator decides whether a cross-origin request is allowed.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedMethods is sent in preflight responses.
	AllowedMethods []string

	// AllowedHeaders is sent in preflight responses.
	AllowedHeaders []string

	// MaxAge is how long, in seconds, preflight results may be cached.
	MaxAge int

	Validator OriginValidator

	// Logger receives rejected origins at warn level. Nil disables logging.
	Logger *slog.Logger
}

// NewCORSConfig returns the API's CORS policy for origins. A "*" entry
// allows every origin.
func NewCORSConfig(origins []string, logger *slog.Logger) CORSConfig {
	return CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
		Validator:      NewWhitelistValidator(origins),
		Logger:         logger,
	}
}

// CORS returns middleware that sets CORS headers for allowed origins.
//
//   - Requests without an Origin header pass through untouched.
//   - Disallowed origins pass through without CORS headers; the browser
//     blocks the response.
//   - Allowed preflight (OPTIONS) requests are answered with 204 and never
//     reach next.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr))
				}
				next.ServeHTTP(w, r)
				return
			}

			// Echo the origin rather than "*" so that credentials are allowed.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
