package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planventura/eventos-api/internal/logger"
	"github.com/planventura/eventos-api/internal/http/response"
)

// Limiter is a fixed-window counter over Redis, used on the credential
// endpoints. On any Redis error it fails open; rate limiting must never take
// login down with it.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewLimiter(redisURL string, limit int, window time.Duration) (*Limiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Limiter{rdb: redis.NewClient(opts), limit: limit, window: window}, nil
}

func (l *Limiter) Allow(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.WarnContext(ctx, "rate limit check failed", "error", err)
		return true
	}
	return incr.Val() <= int64(l.limit)
}

// Middleware limits by client IP. A nil *Limiter is a passthrough so the
// router wiring stays the same whether Redis is configured or not.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l == nil {
			next.ServeHTTP(w, r)
			return
		}
		key := "ratelimit:" + clientIP(r)
		if !l.Allow(r.Context(), key) {
			response.RateLimit(w, "Too many requests. Try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
