package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter guarda um token bucket por cliente (usuário logado ou IP).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry

	limit rate.Limit
	burst int
	log   *zap.Logger
	now   func() time.Time
}

func NewRateLimiter(perMinute int, log *zap.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		log:      log,
		now:      time.Now,
	}
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.limiters[key]
	if !ok {
		l.sweep(now)
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// sweep descarta clientes parados; chamado com o lock.
func (l *RateLimiter) sweep(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(l.limiters, k)
		}
	}
}

func clientKey(c *gin.Context) string {
	if actor := Actor(c); actor.Authenticated() {
		return "user:" + strconv.FormatUint(uint64(actor.UserID), 10)
	}
	return "ip:" + c.ClientIP()
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)
		if !l.get(key).AllowN(l.now(), 1) {
			l.log.Warn("rate limit exceeded",
				zap.String("client", key),
				zap.String("path", c.FullPath()),
			)
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Muitas tentativas. Tente novamente em instantes.")
			c.Abort()
			return
		}
		c.Next()
	}
}
