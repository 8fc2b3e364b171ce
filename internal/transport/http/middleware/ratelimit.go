package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"blogapi/internal/httputil"
)

// Limiter reports whether another hit for id is allowed.
type Limiter interface {
	Allow(ctx context.Context, id string) (bool, error)
}

// RateLimit throttles requests per client IP. When the limiter store fails
// the request is let through. rejected may be nil.
func RateLimit(limiter Limiter, rejected prometheus.Counter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Warn("rate limiter unavailable, failing open", zap.String("ip", ip), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				if rejected != nil {
					rejected.Inc()
				}
				httputil.WriteTooManyRequests(w, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP relies on chi's RealIP having already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
