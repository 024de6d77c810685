package main

import (
	"alumni_portal/configs"
	"alumni_portal/internal/api"
	"alumni_portal/internal/db"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/di"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/notifier"
	"alumni_portal/internal/services"
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadPromotionServiceConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	if err = services.ValidatePromotionConfig(config.Promotion); err != nil {
		logger.Errorw("promotion runs will be refused", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(ctx, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	promotionService := services.NewPromotionService(
		repositories.NewSuggestionRepository(database),
		notifier.FromConfig(config.App, config.Telegram, config.Discord, logger),
		config.Promotion,
		logger,
	)

	if config.Promotion.Schedule != "" {
		scheduler, err := schedule(ctx, config.Promotion.Schedule, promotionService, logger)
		if err != nil {
			logger.Fatalw("failed to schedule promotion", "schedule", config.Promotion.Schedule, "error", err)
		}
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              config.HTTP.Addr,
		Handler:           api.NewPromotionRouter(promotionService, config.Promotion.ServiceKey, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err = api.Serve(ctx, server, config.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Fatalw("http server failed", "error", err)
	}

	logger.Info("shutting down")
}

// schedule runs the promotion job on a cron expression in addition to the
// HTTP trigger. Six field expressions start with seconds.
func schedule(ctx context.Context, expression string, promotion services.PromotionService, logger *zap.SugaredLogger) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if len(strings.Fields(expression)) == 6 {
		s.CronWithSeconds(expression)
	} else {
		s.Cron(expression)
	}

	_, err := s.Do(func() {
		promoted, err := promotion.Run(ctx, identity.Service())
		if err != nil {
			logger.Errorw("scheduled promotion failed", "error", err)
			return
		}
		logger.Infow("scheduled promotion finished", "promoted", len(promoted))
	})
	if err != nil {
		return nil, err
	}

	s.StartAsync()
	return s, nil
}
