package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/insightboard/insightboard-be/internal/http/respond"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit caps each client IP at max requests per window. A max of zero
// disables the middleware entirely.
func RateLimit(max int, window time.Duration, resp *respond.Responder) func(http.Handler) http.Handler {
	if max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)

	limit := rate.Limit(float64(max) / window.Seconds())

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(limit, max)}
			visitors[ip] = v
		}
		v.lastSeen = time.Now()

		// Evict idle entries once the map grows; keeps memory bounded
		// without a janitor goroutine.
		if len(visitors) > 10_000 {
			cutoff := time.Now().Add(-3 * window)
			for key, vis := range visitors {
				if vis.lastSeen.Before(cutoff) {
					delete(visitors, key)
				}
			}
		}

		return v.limiter.Allow()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !allow(ip) {
				resp.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
