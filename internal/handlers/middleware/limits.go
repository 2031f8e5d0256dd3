// internal/handlers/middleware/limits.go
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleLimiter = 10 * time.Minute

// unthrottled paths are polled by load balancers and monitors.
var unthrottled = []string{"/health"}

type clientLimiters struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

func (c *clientLimiters) get(ip string, now time.Time) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	cl, ok := c.clients[ip]
	if !ok {
		cl = &clientLimiter{Limiter: rate.NewLimiter(c.every, c.burst)}
		c.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.Limiter
}

func (c *clientLimiters) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ip, cl := range c.clients {
		if now.Sub(cl.lastSeen) > idleLimiter {
			delete(c.clients, ip)
		}
	}
}

// Throttle allows requests per window for each client IP. Idle clients are
// forgotten until ctx is done.
func Throttle(ctx context.Context, requests int, window time.Duration) Middleware {
	if requests < 1 {
		requests = 1
	}
	limiters := &clientLimiters{
		every:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		clients: make(map[string]*clientLimiter),
	}

	go func() {
		ticker := time.NewTicker(idleLimiter)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				limiters.sweep(now)
			}
		}
	}()

	retryAfter := strconv.Itoa(int(max(time.Second, window/time.Duration(requests)).Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range unthrottled {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if !limiters.get(clientIP(r), time.Now()).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfter)
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Rate limit exceeded","code":"rate_limited"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout cancels the request context and answers 503 after d.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, `{"error":"Request timeout","code":"timeout"}`)
	}
}
