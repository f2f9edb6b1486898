package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Every id-carrying route collapses to one template; anything under
// /articles/ that is not a number collapses to a single "invalid" label.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/.+$`), Template: "/articles/:invalid"},
	{Pattern: regexp.MustCompile(`^/swagger/.*$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
//
// Examples:
//
//	NormalizePath("/articles/123")          // "/articles/:id"
//	NormalizePath("/articles/abc")          // "/articles/:invalid"
//	NormalizePath("/articles")              // "/articles" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/swagger/index.html")    // "/swagger/*"
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/123?page=1")   // "/articles/:id"
//	NormalizePath("/articles/123/")         // "/articles/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// keep the root path as is
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
