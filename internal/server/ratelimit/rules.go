package ratelimit

import (
	"strings"
	"time"
)

// Rule limits requests whose method and path match.
type Rule struct {
	Method string        // HTTP method
	Prefix string        // path prefix
	Suffix string        // optional path suffix, for routes like /resumes/{id}/export.pdf
	Limit  int           // requests per window; 0 means unlimited
	Window time.Duration // refill window
	Burst  int           // bucket capacity, defaults to Limit
}

func (r Rule) matches(method, path string) bool {
	if r.Method != method || !strings.HasPrefix(path, r.Prefix) {
		return false
	}
	return r.Suffix == "" || strings.HasSuffix(path, r.Suffix)
}

// DefaultRules returns the per-route limits. Expensive routes come first
// since the first matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		// Unlimited
		{Method: "GET", Prefix: "/health"},
		{Method: "GET", Prefix: "/metrics"},

		// Expensive: headless browser export and image uploads
		{Method: "GET", Prefix: "/resumes/", Suffix: "/export.pdf", Limit: 20, Window: time.Hour, Burst: 5},
		{Method: "PUT", Prefix: "/resumes/", Suffix: "/upload-images", Limit: 60, Window: time.Hour, Burst: 10},

		// Credential endpoints
		{Method: "POST", Prefix: "/auth/login", Limit: 10, Window: time.Minute, Burst: 5},
		{Method: "POST", Prefix: "/auth/register", Limit: 5, Window: time.Minute, Burst: 3},
		{Method: "PUT", Prefix: "/auth/password", Limit: 5, Window: time.Minute, Burst: 3},

		// Writes
		{Method: "POST", Prefix: "/resumes", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: "DELETE", Prefix: "/resumes/", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// Match returns the first rule matching the request, or nil.
func Match(method, path string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].matches(method, path) {
			return &rules[i]
		}
	}
	return nil
}
