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
	httpmiddleware "github.com/buscaeventos/backend/internal/http/middleware"
	"github.com/buscaeventos/backend/internal/storage"
	"github.com/buscaeventos/backend/internal/user"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("serviço de usuários encerrado com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAuth()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer pool.Close()

	uploads, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, auth.AccessTokenTTL)
	repository := user.NewPostgresRepository(pool)
	service := user.NewService(repository, jwtManager)
	handler := user.NewHandler(service, uploads)

	authMW := httpmiddleware.Auth(jwtManager)
	publicLimiter := httpmiddleware.NewRateLimiter(10, 20)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		user.Mount(r, handler, authMW, publicLimiter.LimitByIP)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	return serve(r, cfg.Port)
}

func serve(handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("serviço de usuários ouvindo em :%d", port)
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
