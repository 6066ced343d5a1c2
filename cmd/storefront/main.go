package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/api"
	"storefront/internal/app/config"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.StartServer(ctx, cfg); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("App terminated")
}
