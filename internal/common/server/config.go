package server

import (
	"net/http"
	"time"

	"github.com/AlibekovAA/user-registry/internal/common/config"
	"github.com/AlibekovAA/user-registry/internal/common/constants"
)

type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// ConfigFor derives listener settings from the registry configuration. The
// write timeout is never shorter than the handler deadline plus
// ServerWriteMargin, and the read timeout covers the handler deadline too.
func ConfigFor(cfg config.RegistryConfig) ServerConfig {
	port := cfg.HTTPPort
	if port == "" {
		port = constants.DefaultHTTPPort
	}

	readTimeout := constants.ServerReadTimeout
	writeTimeout := constants.ServerWriteTimeout
	if floor := cfg.RequestTimeout + constants.ServerWriteMargin; floor > writeTimeout {
		writeTimeout = floor
	}
	if cfg.RequestTimeout > readTimeout {
		readTimeout = cfg.RequestTimeout
	}

	return ServerConfig{
		Addr:              ":" + port,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       constants.ServerIdleTimeout,
		MaxHeaderBytes:    constants.ServerMaxHeaderBytes,
	}
}

func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}
