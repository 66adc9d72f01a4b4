package main

import (
	"os"

	"github.com/nikolayk812/checkout-demo/internal/checkout"
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/obs"
)

func main() {
	log := obs.NewLogger(os.Stderr, "json", "info")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config.Load")
	}

	log = obs.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	result, err := checkout.Run(checkout.ScenarioFromConfig(cfg), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("checkout.Run")
	}

	log.Info().
		Str("total", result.Total.String()).
		Str("taxes", result.Taxes.String()).
		Msg("checkout completed")
}
