package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/huayu-backend/internal/config"
)

// idleEvictAfter is how long a client's limiter survives without traffic.
const idleEvictAfter = 10 * time.Minute

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	cleanup time.Duration
	clock   clockwork.Clock

	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing cfg.RequestsPerMinute with
// bursts of cfg.Burst per client. Run must be started to evict idle clients.
func NewRateLimiter(cfg config.RateLimitConfig, clock clockwork.Clock) *RateLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:   burst,
		cleanup: cfg.CleanupInterval,
		clock:   clock,
		clients: make(map[string]*client),
	}
}

// Limit returns middleware that rejects requests over the limit with 429 and
// a Retry-After header.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := rl.allow(clientIP(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n")) //nolint:errcheck
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// allow consumes a token for key. When none is available it returns the
// time until the next one.
func (rl *RateLimiter) allow(key string) (time.Duration, bool) {
	now := rl.clock.Now()

	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	res := c.lim.ReserveN(now, 1)
	if !res.OK() {
		return time.Minute, false
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return max(wait, time.Second), false
	}
	return 0, true
}

// Run evicts idle clients every cleanup interval until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context) error {
	ticker := rl.clock.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() int {
	cutoff := rl.clock.Now().Add(-idleEvictAfter)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	evicted := 0
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			evicted++
		}
	}
	return evicted
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
