package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/unitedformulas/storefront-api/api/responses"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// DispatchRateLimitPolicy throttles the public dispatch endpoints per
// client IP over a fixed window.
type DispatchRateLimitPolicy struct {
	name    string
	window  time.Duration
	ipLimit int
}

func NewDispatchRateLimitPolicy(name string, window time.Duration, ipLimit int) DispatchRateLimitPolicy {
	return DispatchRateLimitPolicy{
		name:    strings.ToLower(strings.TrimSpace(name)),
		window:  window,
		ipLimit: ipLimit,
	}
}

func (p DispatchRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.ipLimit > 0
}

func (p DispatchRateLimitPolicy) normalizedName() string {
	if p.name == "" {
		return "dispatch"
	}
	return p.name
}

func (p DispatchRateLimitPolicy) scope(ip string) string {
	return p.normalizedName() + ":ip:" + ip
}

// DispatchRateLimit enforces the per-IP counter before the dispatch
// handlers run. A degraded limiter store fails the request rather than
// opening the endpoint to unmetered traffic.
func DispatchRateLimit(policy DispatchRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			if ip == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, count, err := store.FixedWindowAllow(ctx, policy.scope(ip), int64(policy.ipLimit), policy.window)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
				return
			}
			if !allowed {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"policy":         policy.normalizedName(),
						"ip":             ip,
						"attempts":       count,
						"limit":          policy.ipLimit,
						"window_seconds": int(policy.window.Seconds()),
					})
					logg.Warn(logCtx, "dispatch.rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
