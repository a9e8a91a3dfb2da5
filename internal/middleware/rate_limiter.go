package middleware

import (
	"sync"
	"time"

	"parish-ledger/internal/errors"
	"parish-ledger/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*client)
	mu      sync.RWMutex

	// Statement imports parse whole files per request, and a parish
	// treasury has a handful of users at most. Keep per-IP traffic modest.
	requestsPerSecond = 5
	burstSize         = 10
)

const clientIdleTTL = 3 * time.Minute

// RateLimiter throttles requests per client IP using a token bucket.
// Over-limit requests get a SYSTEM_004 response.
func RateLimiter() echo.MiddlewareFunc {
	go evictIdleClients()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := limiterFor(clientIP(c))
			if !limiter.Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the default rate and burst before
// building the limiter. Intended to be called once at startup.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

func limiterFor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	cl, ok := clients[ip]
	if !ok {
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
		clients[ip] = &client{limiter, time.Now()}
		return limiter
	}

	cl.lastSeen = time.Now()
	return cl.limiter
}

// clientIP prefers proxy headers over the socket address so limits hold
// behind a reverse proxy.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func evictIdleClients() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for ip, cl := range clients {
			if time.Since(cl.lastSeen) > clientIdleTTL {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}
