package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"givewise/internal/catalog"
	httpapi "givewise/internal/http"
	"givewise/internal/http/handlers"
	"givewise/internal/infra"
	"givewise/internal/pipeline"
	providers "givewise/internal/signal"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Catalog source: Postgres when configured, embedded seed otherwise.
	var loader catalog.Loader = catalog.SeedLoader{}
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		loader = catalog.NewPGLoader(pool)
	}

	store, err := catalog.NewStore(ctx, loader)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load charity catalog")
	}
	logger.Info().Int("charities", store.Snapshot().Len()).Msg("catalog loaded")

	runner := pipeline.New(store, pipeline.Options{
		Provider:  providers.TextExtractor{},
		Predictor: providers.HeuristicPredictor{},
	}, logger)

	app := handlers.NewApp(runner, store, cfg.HorizonMonths, logger)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
