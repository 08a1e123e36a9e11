package constants

import "time"

const (
	DefaultMaxRequestSize = 1 << 20

	RateLimitCleanupInterval = 1 * time.Minute

	DefaultRateLimitRequestsPerSecond = 20
	DefaultRateLimitBurst             = 40
	DefaultRegisterRequestsPerSecond  = 5
	DefaultRegisterBurst              = 10

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerWriteMargin       = 5 * time.Second
	ServerMaxHeaderBytes    = 16 << 10

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort = "8080"

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
