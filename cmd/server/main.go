// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	accountrouter "github.com/bungee-astro/tracker-api/internal/account/router"
	"github.com/bungee-astro/tracker-api/internal/assistant"
	"github.com/bungee-astro/tracker-api/internal/attribution"
	codechangerouter "github.com/bungee-astro/tracker-api/internal/codechange/router"
	"github.com/bungee-astro/tracker-api/internal/config"
	"github.com/bungee-astro/tracker-api/internal/database/database"
	"github.com/bungee-astro/tracker-api/internal/database/migrate"
	featurerouter "github.com/bungee-astro/tracker-api/internal/feature/router"
	"github.com/bungee-astro/tracker-api/internal/githook"
	"github.com/bungee-astro/tracker-api/internal/health"
	"github.com/bungee-astro/tracker-api/internal/interactions"
	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/notify"
	statisticsrouter "github.com/bungee-astro/tracker-api/internal/statistics/router"
	ticketrouter "github.com/bungee-astro/tracker-api/internal/ticket/router"
	"github.com/bungee-astro/tracker-api/internal/token"
	"github.com/bungee-astro/tracker-api/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	lg, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = lg.Sync()
	}()

	db, err := database.New()
	if err != nil {
		lg.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			lg.Errorw("failed to close database connection", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		lg.Fatalw("failed to apply migrations", "error", err)
	}

	tokens, err := token.New(cfg.Auth.JWTSecret)
	if err != nil {
		lg.Fatalw("failed to initialize token service", "error", err)
	}

	aliases, err := attribution.ParseAliases(cfg.Attribution.AliasSpec)
	if err != nil {
		lg.Fatalw("failed to parse attribution aliases", "error", err)
	}

	notifier := notify.New(cfg.Discord, lg)
	guide := assistant.NewClient(cfg.Assistant)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(lg))
	r.Use(middleware.Recovery(lg))
	r.Use(middleware.CORS())

	healthHandler := health.New(db, lg)
	r.GET("/health", healthHandler.Check)

	accountrouter.RegisterRoutes(r, db, tokens, cfg.Auth, lg)
	ticketrouter.RegisterRoutes(r, db, tokens, notifier, lg)
	featureSvc := featurerouter.RegisterRoutes(r, db, tokens, notifier, lg)
	codeChangeSvc := codechangerouter.RegisterRoutes(r, db, tokens, lg)
	githook.RegisterRoutes(r, db, cfg.GitHub.WebhookSecret, aliases, codeChangeSvc, lg)
	interactions.RegisterRoutes(r, cfg.Discord.PublicKey, featureSvc, lg)
	assistant.RegisterRoutes(r, guide, lg)
	statisticsrouter.RegisterRoutes(r, db, lg)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	lg.Infow("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatalw("server stopped", "error", err)
	}
}
