package http

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AlibekovAA/user-registry/internal/common/clock"
	"github.com/AlibekovAA/user-registry/internal/common/constants"
	"github.com/AlibekovAA/user-registry/internal/common/httpmetrics"
	"github.com/AlibekovAA/user-registry/internal/observability/metrics"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key. Buckets idle for a
// full cleanup interval are dropped.
type RateLimiter struct {
	name     string
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	clock    clock.Clock
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(name string, requestsPerSecond float64, burst int) *RateLimiter {
	rl := NewRateLimiterWithClock(name, requestsPerSecond, burst, clock.NewRealClock())
	go rl.cleanupLimiters(constants.RateLimitCleanupInterval)
	return rl
}

// NewRateLimiterWithClock builds a limiter without the background cleanup
// goroutine; callers drive EvictIdle themselves.
func NewRateLimiterWithClock(name string, requestsPerSecond float64, burst int, c clock.Clock) *RateLimiter {
	return &RateLimiter{
		name:     name,
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		clock:    c,
		stop:     make(chan struct{}),
	}
}

func (rl *RateLimiter) cleanupLimiters(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.EvictIdle(interval)
		}
	}
}

func (rl *RateLimiter) EvictIdle(idle time.Duration) int {
	cutoff := rl.clock.Now().Add(-idle)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	metrics.RateLimitTrackedClients.WithLabelValues(rl.name).Set(float64(len(rl.limiters)))
	return removed
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	now := rl.clock.Now()
	entry.lastSeen = now
	rl.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

const (
	limiterGeneral  = "general"
	limiterRegister = "register"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	RegisterPerSecond float64
	RegisterBurst     int
}

// RegistryRateLimiter applies a stricter bucket to user registration than
// to reads. Health and metrics endpoints are never limited.
type RegistryRateLimiter struct {
	registerLimiter *RateLimiter
	generalLimiter  *RateLimiter
}

func NewRegistryRateLimiter(cfg RateLimitConfig) *RegistryRateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = constants.DefaultRateLimitRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = constants.DefaultRateLimitBurst
	}
	if cfg.RegisterPerSecond <= 0 {
		cfg.RegisterPerSecond = constants.DefaultRegisterRequestsPerSecond
	}
	if cfg.RegisterBurst <= 0 {
		cfg.RegisterBurst = constants.DefaultRegisterBurst
	}

	return &RegistryRateLimiter{
		registerLimiter: NewRateLimiter(limiterRegister, cfg.RegisterPerSecond, cfg.RegisterBurst),
		generalLimiter:  NewRateLimiter(limiterGeneral, cfg.RequestsPerSecond, cfg.Burst),
	}
}

func (l *RegistryRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/health" || path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		limiter := l.generalLimiter
		if r.Method == http.MethodPost && path == "/users/" {
			limiter = l.registerLimiter
		}

		if !limiter.Allow(GetClientIP(r)) {
			metrics.RateLimitBlocked.WithLabelValues(httpmetrics.NormalizePath(path), limiter.name).Inc()
			WriteDetail(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TrackedClients reports how many client buckets both limiters hold.
func (l *RegistryRateLimiter) TrackedClients() int {
	return l.registerLimiter.Size() + l.generalLimiter.Size()
}

func (l *RegistryRateLimiter) Stop() {
	l.registerLimiter.Stop()
	l.generalLimiter.Stop()
}
