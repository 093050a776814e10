package http

import (
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Default search rate per client.
const (
	DefaultSearchRate  = 5.0
	DefaultSearchBurst = 10
)

// limiterIdle is how long an unused client limiter is kept.
const limiterIdle = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client address gets its own limiter; idle limiters are dropped.
type ClientLimiter struct {
	limiters *cache.Cache
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. A non-positive rps disables limiting.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: cache.New(limiterIdle, limiterIdle/2),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether the client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	if l.rps <= 0 {
		return true
	}
	var limiter *rate.Limiter
	if x, found := l.limiters.Get(client); found {
		limiter = x.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		if err := l.limiters.Add(client, limiter, cache.DefaultExpiration); err != nil {
			// Another request for the same client stored one first.
			if x, found := l.limiters.Get(client); found {
				limiter = x.(*rate.Limiter)
			}
		}
	}
	l.limiters.SetDefault(client, limiter)
	return limiter.Allow()
}

// limit rejects requests with 429 once the client exceeds its rate.
func (l *ClientLimiter) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddr(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too many requests.", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// clientAddr returns the host part of the request's remote address.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
