package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbomb79/Booru/internal"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/joho/godotenv"
)

var log = logger.Get("Bootstrap")

// main is the entry point to Booru: the configuration is loaded from the
// file given by -config (and the environment, including any .env file) before
// the services are started. Booru runs until interrupted.
func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Emit(logger.WARNING, "Failed to load .env file: %v\n", err)
	}

	var config internal.BooruConfig
	if err := config.LoadFromFile(*configPath); err != nil {
		log.Emit(logger.FATAL, "%v\n", err)
		os.Exit(1)
	}
	logger.SetMinLoggingLevel(logger.ParseLevel(config.LogLevel).Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := internal.New(config).Run(ctx); err != nil {
		log.Emit(logger.FATAL, "Booru stopped due to error: %v\n", err)
		os.Exit(1)
	}

	log.Emit(logger.STOP, "Booru stopped\n")
}
