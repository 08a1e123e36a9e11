package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlibekovAA/user-registry/internal/common/config"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
	"github.com/AlibekovAA/user-registry/internal/common/server"
)

func TestServe_ShutsDownOnCancelAndRunsHooks(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.NewServer(server.ConfigFor(config.RegistryConfig{HTTPPort: "0"}), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	hookRan := make(chan struct{}, 1)
	hooks := []server.ShutdownHook{
		func(ctx context.Context) error {
			hookRan <- struct{}{}
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, srv, ln, logger.NewWithWriter(io.Discard, "test", "info"), "test", hooks)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-hookRan:
	default:
		t.Fatal("shutdown hook was not run")
	}
}

func TestConfigFor_Defaults(t *testing.T) {
	cfg := server.ConfigFor(config.RegistryConfig{HTTPPort: "9000", RequestTimeout: 5 * time.Second})

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 16<<10, cfg.MaxHeaderBytes)
}

func TestConfigFor_EmptyPortFallsBack(t *testing.T) {
	cfg := server.ConfigFor(config.RegistryConfig{})

	assert.Equal(t, ":8080", cfg.Addr)
}

func TestConfigFor_TimeoutsOutlastRequestDeadline(t *testing.T) {
	cfg := server.ConfigFor(config.RegistryConfig{HTTPPort: "8080", RequestTimeout: time.Minute})

	assert.Equal(t, time.Minute, cfg.ReadTimeout)
	assert.Equal(t, time.Minute+5*time.Second, cfg.WriteTimeout)

	srv := server.NewServer(cfg, http.NotFoundHandler())
	assert.Equal(t, cfg.WriteTimeout, srv.WriteTimeout)
	assert.Equal(t, cfg.MaxHeaderBytes, srv.MaxHeaderBytes)
}
