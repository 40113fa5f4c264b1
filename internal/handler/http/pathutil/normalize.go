// Package pathutil maps request paths to route templates for use as metric
// labels.
package pathutil

import (
	"regexp"
	"strings"
)

// Collections lists the URL segment of every collection route.
var Collections = []string{
	"medical-records",
	"doctors",
	"nurses",
	"medicines",
	"appointments",
	"services",
	"insurances",
	"files",
}

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns matches /<collection>/<id>. Pre-compiled at initialization.
var pathPatterns = buildPatterns(Collections)

func buildPatterns(collections []string) []*PathPattern {
	patterns := make([]*PathPattern, 0, len(collections))
	for _, c := range collections {
		patterns = append(patterns, &PathPattern{
			Pattern:  regexp.MustCompile(`^/` + regexp.QuoteMeta(c) + `/[^/]+$`),
			Template: "/" + c + "/:id",
		})
	}
	return patterns
}

// NormalizePath converts paths carrying an id (e.g. /doctors/5f0c...) to
// their template (/doctors/:id) so that metric label cardinality stays
// bounded. The /all listings, static paths and unknown paths are returned
// unchanged apart from query and trailing slash removal.
//
//	NormalizePath("/doctors/0b7c6f9e-3b1f-4f1e-9a55-0e7b3f5c2d11") // "/doctors/:id"
//	NormalizePath("/doctors/all")                                 // "/doctors/all"
//	NormalizePath("/files?page=2")                                // "/files"
//	NormalizePath("/health")                                      // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if strings.HasSuffix(path, "/all") {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization: list, all and item routes per collection plus the
// static endpoints.
func GetExpectedCardinality() int {
	const staticCount = 5 // /health, /ready, /live, /metrics, /swagger
	return len(Collections)*3 + staticCount
}
