package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/creditodds/creditodds-api/internal/domain"
)

const visitorIdleTTL = 10 * time.Minute

// RateLimiter throttles writes per client IP. Each IP gets its own token
// bucket; buckets unused for visitorIdleTTL are evicted.
type RateLimiter struct {
	visitors       sync.Map // "limit|ip" -> *visitor
	trustedProxies int
	stop           chan struct{}
	once           sync.Once
}

type visitor struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter starts a limiter that sweeps idle buckets every
// cleanupInterval. trustedProxies is how many X-Forwarded-For hops, counted
// from the right, were appended by our own proxies. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, trustedProxies int) *RateLimiter {
	rl := &RateLimiter{trustedProxies: trustedProxies, stop: make(chan struct{})}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows a burst of maxPerMinute requests per client IP, refilled
// evenly over a minute.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(maxPerMinute))))
	prefix := strconv.Itoa(maxPerMinute) + "|"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.visitor(prefix+peerIP(r, rl.trustedProxies), every, maxPerMinute).allow(time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, domain.KindUnavailable, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) visitor(key string, every rate.Limit, burst int) *visitor {
	if v, ok := rl.visitors.Load(key); ok {
		return v.(*visitor)
	}
	v, _ := rl.visitors.LoadOrStore(key, &visitor{lim: rate.NewLimiter(every, burst)})
	return v.(*visitor)
}

func (v *visitor) allow(now time.Time) bool {
	v.lastSeen.Store(now.UnixNano())
	return v.lim.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-visitorIdleTTL).UnixNano()
			rl.visitors.Range(func(key, value any) bool {
				if value.(*visitor).lastSeen.Load() < cutoff {
					rl.visitors.Delete(key)
				}
				return true
			})
		}
	}
}
