package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiter(cfg Config) (*Limiter, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLimiter(cfg)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMatch(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		method, path string
		wantLimit    int
		wantNil      bool
	}{
		{"GET", "/health", 0, false},
		{"GET", "/resumes/abc/export.pdf", 20, false},
		{"PUT", "/resumes/abc/upload-images", 60, false},
		{"POST", "/auth/login", 10, false},
		{"POST", "/resumes", 60, false},
		{"GET", "/resumes", 0, true},
		{"GET", "/resumes/abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rule := Match(tt.method, tt.path, rules)
			if tt.wantNil {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantLimit, rule.Limit)
		})
	}
}

func TestAllow_Disabled(t *testing.T) {
	l, _ := testLimiter(Config{Enabled: false, DefaultLimit: 1})
	defer l.Stop()
	for i := 0; i < 5; i++ {
		ok, _ := l.Allow("1.2.3.4", "GET", "/resumes")
		assert.True(t, ok)
	}
}

func TestAllow_Whitelist(t *testing.T) {
	l, _ := testLimiter(Config{Enabled: true, DefaultLimit: 1, Whitelist: map[string]bool{"10.0.0.1": true}})
	defer l.Stop()
	for i := 0; i < 5; i++ {
		ok, _ := l.Allow("10.0.0.1", "GET", "/resumes")
		assert.True(t, ok)
	}
}

func TestAllow_BurstThenRefill(t *testing.T) {
	l, now := testLimiter(Config{
		Enabled: true,
		Rules:   []Rule{{Method: "POST", Prefix: "/auth/login", Limit: 60, Window: time.Minute, Burst: 2}},
	})
	defer l.Stop()

	ok, info := l.Allow("c", "POST", "/auth/login")
	assert.True(t, ok)
	assert.Equal(t, 60, info.Limit)
	assert.Equal(t, 1, info.Remaining)

	ok, _ = l.Allow("c", "POST", "/auth/login")
	assert.True(t, ok)

	ok, info = l.Allow("c", "POST", "/auth/login")
	assert.False(t, ok)
	assert.Equal(t, time.Second, info.RetryAfter)

	ok, _ = l.Allow("other", "POST", "/auth/login")
	assert.True(t, ok, "clients have separate buckets")

	*now = now.Add(time.Second)
	ok, _ = l.Allow("c", "POST", "/auth/login")
	assert.True(t, ok, "one token refills per second at 60/min")
}

func TestAllow_RuleSharedAcrossIDs(t *testing.T) {
	l, _ := testLimiter(Config{
		Enabled: true,
		Rules:   []Rule{{Method: "GET", Prefix: "/resumes/", Suffix: "/export.pdf", Limit: 1, Window: time.Hour}},
	})
	defer l.Stop()

	ok, _ := l.Allow("c", "GET", "/resumes/a/export.pdf")
	assert.True(t, ok)
	ok, _ = l.Allow("c", "GET", "/resumes/b/export.pdf")
	assert.False(t, ok)
}

func TestAllow_UnlimitedRule(t *testing.T) {
	l, _ := testLimiter(Config{Enabled: true, DefaultLimit: 1, Rules: DefaultRules()})
	defer l.Stop()
	for i := 0; i < 10; i++ {
		ok, _ := l.Allow("c", "GET", "/health")
		assert.True(t, ok)
	}
}

func TestCleanup(t *testing.T) {
	l, now := testLimiter(Config{Enabled: true, DefaultLimit: 10})
	defer l.Stop()

	l.Allow("c", "GET", "/resumes")
	require.Len(t, l.buckets, 1)

	*now = now.Add(2 * idleBucketTTL)
	l.cleanup()
	assert.Empty(t, l.buckets)
	assert.Empty(t, l.lastAccess)
}

func TestStop_Idempotent(t *testing.T) {
	l := NewLimiter(Config{Enabled: true, DefaultLimit: 1, CleanupInterval: time.Millisecond})
	l.Stop()
	assert.NotPanics(t, l.Stop)
}
