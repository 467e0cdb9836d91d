package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/nekogravitycat/hotel-booking/internal/app"
	"github.com/nekogravitycat/hotel-booking/internal/config"
	"github.com/nekogravitycat/hotel-booking/internal/scenario"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid LOG_LEVEL: %v", err)
	}
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Init components
	container := app.NewContainer(app.Config{
		DateFormat: cfg.DateFormat,
		Out:        os.Stdout,
		Logger:     logger,
	})

	// Pick scenario: built-in demo unless a script file is configured
	script := scenario.Demo()
	if cfg.ScenarioPath != "" {
		script, err = scenario.Load(cfg.ScenarioPath)
		if err != nil {
			logger.Fatalf("failed to load scenario: %v", err)
		}
	}

	// Run the scripted session
	if err := container.Runner.Run(ctx, script); err != nil {
		logger.Fatalf("scenario failed: %v", err)
	}

	// Print final state
	fmt.Println()
	if err := container.Reporter.All(ctx); err != nil {
		logger.Fatalf("failed to print report: %v", err)
	}
}
