package http

import (
	"net/http"

	"github.com/AlibekovAA/user-registry/internal/common/httpmetrics"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
)

type BaseHandlerConfig struct {
	MaxRequestSize int64
	RateLimiter    *RegistryRateLimiter
}

// BuildBaseHandler wraps handler in the standard middleware chain, outermost
// first: security headers, recovery, trace id, body limit, metrics and,
// when configured, rate limiting.
func BuildBaseHandler(cfg BaseHandlerConfig, log *logger.Logger, handler http.Handler) http.Handler {
	if cfg.RateLimiter != nil {
		handler = cfg.RateLimiter.Middleware(handler)
	}

	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(cfg.MaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware("")

	return securityHeaders(recovery(TraceIDMiddleware(maxRequestSize(metrics.Wrap(handler)))))
}
