package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlibekovAA/user-registry/internal/common/bootstrap"
	srv "github.com/AlibekovAA/user-registry/internal/common/server"
)

func main() {
	app, err := bootstrap.NewRegistryApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start %s service: %v\n", bootstrap.ServiceName, err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := srv.NewServer(srv.ConfigFor(app.Config), app.Handler())

	if err := srv.Run(ctx, server, app.Log, bootstrap.ServiceName, app.ShutdownHooks()); err != nil {
		app.Log.Errorf("%s service exited: %v", bootstrap.ServiceName, err)
		app.Close()
		os.Exit(1)
	}
}
