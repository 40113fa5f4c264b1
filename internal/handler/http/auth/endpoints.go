package auth

import "strings"

// PublicEndpoints lists the operational routes served without a bearer
// token: the probes, the Prometheus scrape target and the Swagger UI.
// Every clinic resource route requires a token.
//
// An entry with a trailing slash covers its whole subtree.
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
}

// IsPublicEndpoint reports whether path bypasses Authz.
//
// Subtree entries match by prefix. Other entries match the bare path, the
// path with one trailing slash, or the path followed by a query string, so
// "/health/" and "/health?verbose=1" are public while "/health/db" and
// "/healthz" are not.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		rest, ok := strings.CutPrefix(path, endpoint)
		if ok && (rest == "" || rest == "/" || strings.HasPrefix(rest, "?")) {
			return true
		}
	}
	return false
}
