package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/bamacgabhann/county-competitions/config"
	"github.com/bamacgabhann/county-competitions/db"
	"github.com/bamacgabhann/county-competitions/handlers"
	"github.com/bamacgabhann/county-competitions/live"
	"github.com/bamacgabhann/county-competitions/repositories"
	"github.com/bamacgabhann/county-competitions/routes"
	"github.com/bamacgabhann/county-competitions/services"
	"github.com/bamacgabhann/county-competitions/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.CrestStorageConfigured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("crest storage initialized")
	} else {
		logger.Warn("R2 settings incomplete, crest uploads disabled")
	}

	hub := live.NewHub(logger)
	go hub.Run()

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	competitionRepo := repositories.NewPostgresCompetitionRepository(dbConn)
	groupRepo := repositories.NewPostgresGroupRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	criteriaRepo := repositories.NewPostgresCriteriaRepository(dbConn)
	clubRepo := repositories.NewPostgresClubRepository(dbConn)
	venueRepo := repositories.NewPostgresVenueRepository(dbConn)
	refereeRepo := repositories.NewPostgresRefereeRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)

	authService := services.NewAuthService(dbConn, userRepo, cfg.JWTSecretKey)
	resultService := services.NewResultService(dbConn, matchRepo, teamRepo, groupRepo, criteriaRepo, hub, logger)
	standingsService := services.NewStandingsService(dbConn, competitionRepo, groupRepo, teamRepo, matchRepo)
	clubService := services.NewClubService(dbConn, clubRepo, venueRepo, refereeRepo, uploader, logger)
	playerService := services.NewPlayerService(dbConn, playerRepo, matchRepo)

	router := routes.InitRoutes(routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Results:   handlers.NewResultHandler(resultService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Clubs:     handlers.NewClubHandler(clubService),
		Players:   handlers.NewPlayerHandler(playerService),
		Live:      handlers.NewLiveHandler(hub, logger),
	}, cfg.JWTSecretKey)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", slog.String("signal", s.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	logger.Info("starting server", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
