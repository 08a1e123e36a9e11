package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AlibekovAA/user-registry/internal/common/validation"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type RegistryConfig struct {
	HTTPPort             string        `env:"REGISTRY_HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	RequestTimeout       time.Duration `env:"REGISTRY_REQUEST_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	MaxRequestSize       int64         `env:"REGISTRY_MAX_REQUEST_SIZE" envDefault:"1048576" validate:"gt=0"`
	RateLimitRPS         float64       `env:"REGISTRY_RATE_LIMIT_RPS" envDefault:"20" validate:"gt=0"`
	RateLimitBurst       int           `env:"REGISTRY_RATE_LIMIT_BURST" envDefault:"40" validate:"gt=0"`
	RegisterRateLimitRPS float64       `env:"REGISTRY_REGISTER_RPS" envDefault:"5" validate:"gt=0"`
	RegisterBurst        int           `env:"REGISTRY_REGISTER_BURST" envDefault:"10" validate:"gt=0"`
	LogDir               string        `env:"LOG_DIR"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"INFO" validate:"oneof=DEBUG INFO WARN WARNING ERROR CRITICAL debug info warn warning error critical"`
}

func LoadRegistryConfig() (RegistryConfig, error) {
	var cfg RegistryConfig
	if err := env.Parse(&cfg); err != nil {
		return RegistryConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validation.New().Struct(cfg); err != nil {
		return RegistryConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}
