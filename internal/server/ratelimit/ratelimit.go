// Package ratelimit provides per-client token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"
)

// idleBucketTTL is how long an unused bucket is kept.
const idleBucketTTL = time.Hour

// bucket is a token bucket refilled at a steady rate.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64, now time.Time) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
	}
}

// take refills the bucket and consumes one token if available. It returns the
// tokens left and the time at which the bucket will be full again.
func (b *bucket) take(now time.Time) (ok bool, remaining int, full time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}
	full = now
	if b.tokens < b.capacity && b.refillRate > 0 {
		full = now.Add(time.Duration((b.capacity - b.tokens) / b.refillRate * float64(time.Second)))
	}
	return ok, int(b.tokens), full
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int // per DefaultWindow
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Rules           []Rule
}

// Limiter manages one bucket per client, method and route.
type Limiter struct {
	config Config
	now    func() time.Time

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	stop chan struct{}
	once sync.Once
}

// NewLimiter creates a limiter and, when enabled, starts its cleanup loop.
func NewLimiter(config Config) *Limiter {
	if config.DefaultWindow <= 0 {
		config.DefaultWindow = time.Minute
	}
	l := &Limiter{
		config:     config,
		now:        time.Now,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow checks if a request from clientID to method+path may proceed.
func (l *Limiter) Allow(clientID, method, path string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	rule := Match(method, path, l.config.Rules)
	key := clientID + ":" + method + ":" + path
	if rule == nil {
		rule = &Rule{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	} else {
		// Routes sharing a rule share a bucket, so /resumes/a and /resumes/b
		// draw from the same budget.
		key = clientID + ":" + rule.Method + ":" + rule.Prefix + "*" + rule.Suffix
	}
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	b := l.bucketFor(key, *rule, now)
	ok, remaining, full := b.take(now)

	info := Info{Allowed: ok, Limit: rule.Limit, Remaining: remaining, ResetTime: full}
	if !ok {
		// One token arrives after 1/refillRate seconds.
		info.RetryAfter = time.Duration(float64(time.Second) / b.refillRate)
	}
	return ok, info
}

func (l *Limiter) bucketFor(key string, rule Rule, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = now
	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds(), now)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup drops buckets idle for longer than idleBucketTTL.
func (l *Limiter) cleanup() {
	cutoff := l.now().Add(-idleBucketTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
