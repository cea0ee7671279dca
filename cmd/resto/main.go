package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/resto/adapter/cli"
	cliCity "github.com/felixgeelhaar/resto/adapter/cli/city"
	cliRestaurant "github.com/felixgeelhaar/resto/adapter/cli/restaurant"
	cliReview "github.com/felixgeelhaar/resto/adapter/cli/review"
	"github.com/felixgeelhaar/resto/internal/app"
	"github.com/felixgeelhaar/resto/pkg/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development", DatabaseDriver: "sqlite"}
	}

	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateCityHandler:              container.CreateCityHandler,
		CreateRestaurantHandler:        container.CreateRestaurantHandler,
		UpdateRestaurantDetailsHandler: container.UpdateRestaurantDetailsHandler,
		UpdateRestaurantAddressHandler: container.UpdateRestaurantAddressHandler,
		DeleteRestaurantHandler:        container.DeleteRestaurantHandler,
		AddBasicEvaluationHandler:      container.AddBasicEvaluationHandler,
		AddCompleteEvaluationHandler:   container.AddCompleteEvaluationHandler,
		ListRestaurantsHandler:         container.ListRestaurantsHandler,
		GetRestaurantHandler:           container.GetRestaurantHandler,
		ListCitiesHandler:              container.ListCitiesHandler,
		ListTypesHandler:               container.ListTypesHandler,
		ListCriteriaHandler:            container.ListCriteriaHandler,
	})

	cli.AddCommand(cliRestaurant.Cmd)
	cli.AddCommand(cliCity.Cmd)
	cli.AddCommand(cliReview.Cmd)

	cli.Execute()
}
