package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientBucket pairs a token bucket with the time it was last used, so idle
// entries can be pruned instead of growing without bound.
type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client IP. An IP that drains its
// bucket is blocked for a cooldown period before it gets a fresh one.
type RateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientBucket
	blockedUntil map[string]time.Time
	budget       int
	refillEvery  time.Duration
	cooldown     time.Duration
	lastPruned   time.Time
}

const clientBucketTTL = 10 * time.Minute

func NewRateLimiter(budget int, refillEvery, cooldown time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:      make(map[string]*clientBucket),
		blockedUntil: make(map[string]time.Time),
		budget:       budget,
		refillEvery:  refillEvery,
		cooldown:     cooldown,
		lastPruned:   time.Now(),
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		now := time.Now()

		rl.mu.Lock()
		rl.pruneLocked(now)

		if until, found := rl.blockedUntil[ip]; found {
			if now.Before(until) {
				rl.mu.Unlock()
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(until).Seconds())+1))
				http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(rl.blockedUntil, ip)
			delete(rl.clients, ip)
		}

		bucket, exists := rl.clients[ip]
		if !exists {
			bucket = &clientBucket{limiter: rate.NewLimiter(rate.Every(rl.refillEvery), rl.budget)}
			rl.clients[ip] = bucket
		}
		bucket.lastSeen = now
		rl.mu.Unlock()

		if !bucket.limiter.Allow() {
			rl.mu.Lock()
			rl.blockedUntil[ip] = now.Add(rl.cooldown)
			rl.mu.Unlock()

			w.Header().Set("Retry-After", strconv.Itoa(int(rl.cooldown.Seconds())))
			http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// pruneLocked drops buckets that have been idle past their TTL and expired
// blocks. Callers must hold rl.mu.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(rl.lastPruned) < clientBucketTTL {
		return
	}
	for ip, bucket := range rl.clients {
		if now.Sub(bucket.lastSeen) > clientBucketTTL {
			delete(rl.clients, ip)
		}
	}
	for ip, until := range rl.blockedUntil {
		if now.After(until) {
			delete(rl.blockedUntil, ip)
		}
	}
	rl.lastPruned = now
}
