package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	// IdleTTL drops limiters for clients not seen for this long.
	IdleTTL time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 20,
		BurstSize:         40,
		IdleTTL:           10 * time.Minute,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore holds one token bucket per client IP.
type limiterStore struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	config    RateLimitConfig
	lastSweep time.Time
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultRateLimitConfig().IdleTTL
	}
	return &limiterStore{
		visitors:  make(map[string]*visitor),
		config:    cfg,
		lastSweep: time.Now(),
	}
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.config.IdleTTL {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.config.IdleTTL {
				delete(s.visitors, k)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(s.config.RequestsPerSecond), s.config.BurstSize)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (s *limiterStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// retryAfter is the whole number of seconds until the reservation would be
// served, at least 1.
func retryAfter(d time.Duration) int {
	if d <= 0 || d == rate.InfDuration {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}

// RateLimit limits each client IP to cfg.RequestsPerSecond with bursts of
// cfg.BurstSize. Rejected requests get 429 with Retry-After.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := newLimiterStore(cfg)
	limitHeader := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', -1, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			lim := store.get(c.RealIP(), now)
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limitHeader)

			res := lim.ReserveN(now, 1)
			if !res.OK() {
				h.Set("Retry-After", "1")
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			if d := res.DelayFrom(now); d > 0 {
				res.CancelAt(now)
				h.Set("Retry-After", strconv.Itoa(retryAfter(d)))
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			h.Set("X-RateLimit-Remaining", strconv.Itoa(int(lim.TokensAt(now))))
			return next(c)
		}
	}
}
