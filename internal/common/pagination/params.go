package pagination

import (
	"net/http"
	"strconv"
)

// Params represents normalized pagination parameters.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// Resolve normalizes raw page and limit values. Invalid values are corrected,
// never rejected.
//
// Rules (each applied independently):
//   - page < 1 becomes config.DefaultPage
//   - limit < 1 becomes config.DefaultLimit (not 1)
//   - limit > config.MaxLimit becomes config.MaxLimit
func Resolve(page, limit int, config Config) Params {
	config = config.withFallbacks()
	if page < 1 {
		page = config.DefaultPage
	}
	if limit < 1 {
		limit = config.DefaultLimit
	}
	if limit > config.MaxLimit {
		limit = config.MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// ParseQueryParams reads page and limit from the request query string.
// Missing or non-numeric values are treated as absent and fall back to the
// configured defaults; the result is always normalized by Resolve.
func ParseQueryParams(r *http.Request, config Config) Params {
	q := r.URL.Query()
	return Resolve(queryInt(q.Get("page")), queryInt(q.Get("limit")), config)
}

// Offset returns the number of records to skip for this page.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

// queryInt parses s as an integer, returning 0 (treated as absent) on failure.
func queryInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
