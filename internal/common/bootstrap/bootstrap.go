package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlibekovAA/user-registry/internal/common/config"
	commonhttp "github.com/AlibekovAA/user-registry/internal/common/http"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
	srv "github.com/AlibekovAA/user-registry/internal/common/server"
	"github.com/AlibekovAA/user-registry/internal/common/validation"
	userhttp "github.com/AlibekovAA/user-registry/internal/user/http"
	userrepo "github.com/AlibekovAA/user-registry/internal/user/repository"
	userservice "github.com/AlibekovAA/user-registry/internal/user/service"
)

const ServiceName = "registry"

type App struct {
	Log         *logger.Logger
	Config      config.RegistryConfig
	Validator   *validation.Validator
	UserRepo    userrepo.Repository
	UserService *userservice.RegistryService
	RateLimiter *commonhttp.RegistryRateLimiter
}

func NewRegistryApp() (*App, error) {
	cfg, err := config.LoadRegistryConfig()
	if err != nil {
		logger.NewWithWriter(os.Stdout, ServiceName, "").Criticalf("failed to load config: %v", err)
		return nil, err
	}

	log, err := logger.New(cfg.LogDir, ServiceName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewApp(cfg, log), nil
}

// NewApp wires the registry for an already loaded configuration. The
// registry starts empty and lives as long as the App.
func NewApp(cfg config.RegistryConfig, log *logger.Logger) *App {
	log.SetLevel(cfg.LogLevel)

	v := validation.New()
	repo := userrepo.NewMemoryRepository()

	return &App{
		Log:         log,
		Config:      cfg,
		Validator:   v,
		UserRepo:    repo,
		UserService: userservice.NewRegistryService(repo, v, log),
		RateLimiter: commonhttp.NewRegistryRateLimiter(commonhttp.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
			RegisterPerSecond: cfg.RegisterRateLimitRPS,
			RegisterBurst:     cfg.RegisterBurst,
		}),
	}
}

func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", userhttp.NewHandler(a.UserService, a.Validator, a.Config.RequestTimeout, a.Log))
	mux.Handle("/metrics", promhttp.Handler())

	return commonhttp.BuildBaseHandler(commonhttp.BaseHandlerConfig{
		MaxRequestSize: a.Config.MaxRequestSize,
		RateLimiter:    a.RateLimiter,
	}, a.Log, mux)
}

func (a *App) ShutdownHooks() []srv.ShutdownHook {
	return []srv.ShutdownHook{
		func(ctx context.Context) error {
			a.Log.Infof("%s service: stopping rate limiter cleanup, %d client buckets held", ServiceName, a.RateLimiter.TrackedClients())
			a.RateLimiter.Stop()
			return nil
		},
		func(ctx context.Context) error {
			a.Log.Infof("%s service: discarding %d registered users", ServiceName, a.UserRepo.Count(ctx))
			return nil
		},
	}
}

func (a *App) Close() error {
	a.RateLimiter.Stop()
	return a.Log.Close()
}
