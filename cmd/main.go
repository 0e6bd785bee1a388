package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/mindlink/internal/app"
	"github.com/orgball2608/mindlink/pkg/logger"
	"go.uber.org/fx"
)

const (
	startTimeout = time.Minute
	stopTimeout  = 30 * time.Second
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	application := fx.New(
		fx.Logger(log),
		fx.StartTimeout(startTimeout),
		fx.StopTimeout(stopTimeout),
		app.Module,
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), startTimeout)
	if err := application.Start(startCtx); err != nil {
		cancelStart()
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
	cancelStart()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Info("Shutdown signal received")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		cancelStop()
		os.Exit(1)
	}
}
