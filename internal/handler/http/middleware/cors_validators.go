package middleware

import (
	"strings"
)

// WhitelistValidator allows origins from a fixed list. Comparison ignores
// case and a trailing slash. The entry "*" allows every origin.
type WhitelistValidator struct {
	allowedOrigins []string
	allowAll       bool
}

// NewWhitelistValidator normalizes origins and drops empty entries.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{allowedOrigins: make([]string, 0, len(origins))}
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			v.allowAll = true
		}
		v.allowedOrigins = append(v.allowedOrigins, origin)
	}
	return v
}

func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	if v.allowAll {
		return true
	}
	for _, allowed := range v.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// GetAllowedOrigins returns a copy of the normalized origins.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	return append([]string(nil), v.allowedOrigins...)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
