package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tala-app/backend/internal/config"
)

// clientLimiter tracks one client's token bucket and when it was last used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit creates a middleware enforcing a per-client request rate.
// Clients are keyed by remote IP. Idle clients are pruned lazily.
func RateLimit(cfg *config.RateLimitConfig) Middleware {
	if cfg == nil || cfg.RequestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limit := rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	allow := func(key string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		c, ok := clients[key]
		if !ok {
			// Prune clients idle for over an hour before growing the map.
			if len(clients) > 1000 {
				for k, v := range clients {
					if now.Sub(v.lastSeen) > time.Hour {
						delete(clients, k)
					}
				}
			}
			c = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
			clients[key] = c
		}
		c.lastSeen = now
		return c.limiter.Allow()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}
			if !allow(key) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
