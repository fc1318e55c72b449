package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/faheemframes/healthyfi/internal/adapter/repo"
	"github.com/faheemframes/healthyfi/internal/http/handlers"
	httpapi "github.com/faheemframes/healthyfi/internal/http/httpapi"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/infra/geoip"
	"github.com/faheemframes/healthyfi/internal/insight"
	"github.com/faheemframes/healthyfi/internal/providers/foodscan"
	"github.com/faheemframes/healthyfi/internal/providers/prompt"
	"github.com/faheemframes/healthyfi/internal/service"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	mode, err := insight.ParseBucketMode(cfg.WeeklyBucketing)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid WEEKLY_BUCKETING")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sqlRunner := infra.NewSQLRunner(dbpool, logger)
	meals := repo.NewMealRepository(sqlRunner)
	water := repo.NewWaterRepository(sqlRunner)
	profiles := repo.NewProfileRepository(sqlRunner)
	reminders := repo.NewReminderRepository(sqlRunner)

	suggester, err := prompt.New(prompt.Options{
		Provider:      cfg.AIProvider,
		APIKey:        cfg.AIAPIKey,
		Model:         cfg.AIModel,
		BaseURL:       cfg.AIBaseURL,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		GeminiBaseURL: cfg.GeminiBaseURL,
		Timeout:       cfg.AITimeout,
		OnError: func(reason string, err error) {
			logger.Warn().Err(err).Str("provider", cfg.AIProvider).Str("reason", reason).Msg("ai provider error")
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure ai provider")
	}
	if _, ok := suggester.(prompt.Unconfigured); ok {
		logger.Warn().Str("provider", cfg.AIProvider).Msg("ai api key missing; suggestions disabled")
	}

	geo, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
		geo = nil
	}
	defer geo.Close()

	app := &handlers.App{
		Config:      cfg,
		Logger:      logger,
		Store:       sqlRunner,
		GeoIP:       geo,
		Dashboard:   service.NewDashboardService(meals, water, mode, logger),
		Suggestions: service.NewSuggestionService(suggester, meals, water, logger),
		Intake:      service.NewIntakeService(meals, water),
		Reminders:   service.NewReminderService(reminders),
		Profiles:    service.NewProfileService(profiles),
		Scanner:     foodscan.NewStub(nil),
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("port", cfg.Port).Str("bucketing", string(mode)).Msg("API listening")
	if err := server.Run(runCtx); err != nil {
		logger.Error().Err(err).Msg("http server stopped with error")
	}
	logger.Info().Msg("server stopped")
}
