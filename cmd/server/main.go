package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/nileshdj/inkpost/internal/api"
	"github.com/nileshdj/inkpost/internal/api/handlers"
	"github.com/nileshdj/inkpost/internal/auth"
	"github.com/nileshdj/inkpost/internal/config"
	"github.com/nileshdj/inkpost/internal/repositories"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	db, err := repositories.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	passwords := auth.NewPasswordService(bcrypt.DefaultCost)

	router := api.SetupRouter(api.Handlers{
		Auth: &handlers.AuthHandler{
			Users: repositories.NewUserStore(db),
			Creds: passwords,
			Log:   log,
		},
		Content: &handlers.ContentHandler{
			Contents: repositories.NewContentStore(db),
			Log:      log,
		},
	}, cfg.CorsConfig, log)

	server := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}
