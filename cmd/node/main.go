package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-privacy-node/internal/app"
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("privacy-node")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.GenerateKeys != "" {
		if err = app.GenerateKeys(cfg.GenerateKeys, cfg.App.Passwords, log); err != nil {
			log.Fatal().Err(err).Msg("error generating keys")
		}
		return
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	node, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating node")
	}

	if err = node.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("node run error")
	}
	log.Info().Msg("node stopped")
}
