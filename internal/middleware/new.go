package middleware

import (
	"time"

	"objection-handler/config"
	"objection-handler/internal/metrics"
	"objection-handler/pkg/log"
)

type Middleware struct {
	l           log.Logger
	corsConfig  config.CORSConfig
	rateLimiter *rateLimiter
	metrics     *metrics.Metrics
}

// New builds the shared middleware set. A nil limiter disables rate limiting.
func New(l log.Logger, cfg *config.Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:          l,
		corsConfig: cfg.CORS,
		metrics:    m,
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMinute > 0 {
		ttl, err := time.ParseDuration(cfg.RateLimit.CacheTTL)
		if err != nil || ttl <= 0 {
			ttl = 5 * time.Minute
		}
		mw.rateLimiter = newRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CacheSize, ttl)
	}
	return mw
}
