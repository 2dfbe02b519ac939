package main

import (
	"context"
	"log/slog"
	"os"

	"foodorder/cmd"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs)
	logger.Info("starting", "session", uuid.NewString())

	app := cmd.NewCompositionRoot(
		configs,
	)
	runCLI(&app, logger, configs.CurrencyPrefix)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine, the environment still applies.
	_ = godotenv.Load(".env")

	config, err := env.ParseAs[cmd.Config]()
	if err != nil {
		log.Fatalf("Error parsing configuration: %v", err)
	}
	return config
}

func newLogger(configs cmd.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(configs.LogLevel)); err != nil {
		log.Fatalf("Error parsing log level %q: %v", configs.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch configs.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		log.Fatalf("Unknown log format %q", configs.LogFormat)
	}
	return slog.New(handler)
}

func runCLI(app *cmd.CompositionRoot, logger *slog.Logger, currency string) {
	menu := app.CreateCLI(os.Stdin, os.Stdout, logger, currency)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("CLI terminated: %v", err)
	}
}
