package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"affiliate-catalog/internal/config"
	"affiliate-catalog/internal/database"
	"affiliate-catalog/internal/logger"
	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/routes"
	"affiliate-catalog/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(config.LogConfig{Level: "info"})
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Log)
	log.Info().Str("env", cfg.Env).Msg("starting affiliate catalog API")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server exited gracefully")
}

// run devuelve el error en lugar de terminar el proceso para que los defer
// (cierre de la conexión a Mongo incluido) se ejecuten siempre.
func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Disconnect(client, log)

	store := database.NewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.OpTimeout, log)
	if err := database.EnsureIndexes(ctx, store, log); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	repos := repository.New(store)
	services := service.New(repos, log)

	router, err := routes.NewRouter(services, cfg, log)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
