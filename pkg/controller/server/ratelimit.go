package server

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

type limitClass string

const (
	classAPI     limitClass = "api"
	classAuth    limitClass = "auth"
	classWebhook limitClass = "webhook"
	classSync    limitClass = "sync"
)

type RateLimit struct {
	Limit  int
	Window time.Duration
}

type RateLimits map[limitClass]RateLimit

func defaultRateLimits() RateLimits {
	return RateLimits{
		classAPI:     {Limit: 100, Window: 15 * time.Minute},
		classAuth:    {Limit: 10, Window: 15 * time.Minute},
		classWebhook: {Limit: 1000, Window: time.Minute},
		classSync:    {Limit: 10, Window: 5 * time.Minute},
	}
}

// TestRateLimits applies the same limit to every class, mainly for tests.
func TestRateLimits(limit int, window time.Duration) RateLimits {
	return RateLimits{
		classAPI:     {Limit: limit, Window: window},
		classAuth:    {Limit: limit, Window: window},
		classWebhook: {Limit: limit, Window: window},
		classSync:    {Limit: limit, Window: window},
	}
}

// rateLimiter keeps process-wide fixed-window counters per (class, client)
// pair. Each window has an independent reset timer and no persistence, so
// all counters reset on process restart.
type rateLimiter struct {
	mu      sync.Mutex
	limits  RateLimits
	windows map[string]*limitWindow
}

type limitWindow struct {
	count   int
	resetAt time.Time
}

func newRateLimiter(limits RateLimits) *rateLimiter {
	return &rateLimiter{
		limits:  limits,
		windows: map[string]*limitWindow{},
	}
}

func (x *rateLimiter) allow(class limitClass, clientKey string, now time.Time) (bool, int, time.Time) {
	limit, ok := x.limits[class]
	if !ok {
		return true, 0, now
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	key := string(class) + "|" + clientKey
	w, ok := x.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &limitWindow{resetAt: now.Add(limit.Window)}
		x.windows[key] = w
	}

	if w.count >= limit.Limit {
		return false, 0, w.resetAt
	}
	w.count++

	return true, limit.Limit - w.count, w.resetAt
}

func (x *rateLimiter) middleware(class limitClass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := logging.CtxTime(r.Context())
			allowed, remaining, resetAt := x.allow(class, clientKey(r), now)

			limit := x.limits[class]
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

			if !allowed {
				retryAfter := int(resetAt.Sub(now).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies a caller for rate limiting: the remote IP, suffixed
// when the request carries credentials so authenticated traffic gets its own
// counters.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if r.Header.Get("Authorization") != "" {
		return host + ":authenticated"
	}
	return host
}
