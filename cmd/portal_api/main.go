package main

import (
	"alumni_portal/configs"
	"alumni_portal/internal/api"
	"alumni_portal/internal/db"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/di"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/realtime"
	"alumni_portal/internal/services"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
)

func main() {
	config, err := configs.LoadPortalAPIConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(ctx, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	profileRepository := repositories.NewProfileRepository(database)
	suggestionRepository := repositories.NewSuggestionRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	commentRepository := repositories.NewCommentRepository(database)
	eventRepository := repositories.NewEventRepository(database)

	sessionManager := scs.New()
	sessionManager.Lifetime = config.Session.Lifetime
	sessionManager.Cookie.Name = config.Session.CookieName
	sessionManager.Cookie.Secure = config.Session.CookieSecure
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	broker := realtime.NewBroker()
	go func() {
		if err := realtime.NewPgListener(config.DB.URL, config.Realtime, broker, logger).Run(ctx); err != nil {
			logger.Errorw("change listener stopped", "error", err)
		}
	}()

	router := api.NewRouter(api.Dependencies{
		Auth:        services.NewAuthService(profileRepository, logger),
		Profiles:    services.NewProfileService(profileRepository, logger),
		Suggestions: services.NewSuggestionService(suggestionRepository, voteRepository, commentRepository, logger),
		Events:      services.NewEventService(eventRepository, logger),
		Analytics:   services.NewAnalyticsService(profileRepository, eventRepository, suggestionRepository, logger),
		Sessions:    identity.NewSessionResolver(sessionManager, profileRepository),
		Changes:     broker,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:              config.HTTP.Addr,
		Handler:           sessionManager.LoadAndSave(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err = api.Serve(ctx, server, config.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Fatalw("http server failed", "error", err)
	}

	logger.Info("shutting down")
}
