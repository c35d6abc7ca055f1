package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key. It is an explicit state
// object owned by the server, with a janitor goroutine evicting idle buckets.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	done     chan struct{}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		done:     make(chan struct{}),
	}
	go rl.janitor()
	return rl
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, cl := range rl.limiters {
				if time.Since(cl.lastSeen) > 15*time.Minute {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Middleware limits by authenticated user when available, falling back to
// the remote address. Runs after JWTMiddleware on protected routes.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if user, ok := CurrentUser(c); ok {
				key = "user:" + user.Username
			}

			if !rl.get(key).Allow() {
				return http_util.EncodeError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			}
			return next(c)
		}
	}
}
