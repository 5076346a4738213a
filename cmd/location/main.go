package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/buscaeventos/backend/internal/auth"
	"github.com/buscaeventos/backend/internal/config"
	"github.com/buscaeventos/backend/internal/db"
	"github.com/buscaeventos/backend/internal/event"
	httpmiddleware "github.com/buscaeventos/backend/internal/http/middleware"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("serviço de eventos encerrado com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.LoadLocation()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	database, err := db.NewMongoDatabase(ctx, cfg.MongoURI(), cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer func() {
		_ = database.Client().Disconnect(context.Background())
	}()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, auth.AccessTokenTTL)
	repository := event.NewMongoRepository(database, db.EventsCollection)
	service := event.NewService(repository)
	handler := event.NewHandler(service)

	authMW := httpmiddleware.Auth(jwtManager)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1/events", func(r chi.Router) {
		event.Mount(r, handler, authMW)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("serviço de eventos ouvindo em :%d", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("encerrando...")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
