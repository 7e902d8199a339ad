package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/iamasit07/anti-4-in-a-row/internal/config"
	"github.com/iamasit07/anti-4-in-a-row/internal/repository/postgres"
	"github.com/iamasit07/anti-4-in-a-row/internal/repository/redis"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/bot"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/cleanup"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/game"
	transportHttp "github.com/iamasit07/anti-4-in-a-row/internal/transport/http"
	"github.com/iamasit07/anti-4-in-a-row/internal/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no-env-file")
		}
	}

	cfg := config.LoadConfig()
	config.SetupLogging(cfg, os.Stdout)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Decision log (optional)
	var recorder game.DecisionRecorder
	var decisions transportHttp.DecisionLister
	if cfg.DatabaseURL != "" {
		if err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin); err != nil {
			log.Fatal().Err(err).Msg("database-unreachable")
		}
		if err := postgres.RunMigrations(postgres.DB); err != nil {
			log.Fatal().Err(err).Msg("migration-failed")
		}
		log.Info().Msg("database-migrated")

		repo := postgres.NewDecisionRepo(postgres.DB)
		recorder = repo
		decisions = repo

		worker := cleanup.NewWorker(repo, cfg.DecisionRetentionDays)
		go worker.Start(ctx)
	} else {
		log.Warn().Msg("database-url-empty-decision-log-disabled")
	}

	// 2. Param cache (optional)
	var params game.ParamStore
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Warn().Err(err).Msg("redis-init-failed")
	}
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		params = redis.NewParamCache(redis.RedisClient, cfg.ParamTTL)
	}

	// 3. Services and transports
	gameService := game.NewService(bot.NewEngine(), cfg.SearchDepth, params, recorder)
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, gameService, cfg.JWTSecret)

	router := transportHttp.NewRouter(transportHttp.RouterDeps{
		Matches:        transportHttp.NewMatchHandler(gameService, cfg.JWTSecret, cfg.MatchTokenTTL),
		History:        transportHttp.NewHistoryHandler(decisions),
		WebSocket:      wsHandler.HandleWebSocket,
		Secret:         cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server-starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server-error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server-shutting-down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var result *multierror.Error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	connManager.CloseAll()
	if err := redis.CloseRedis(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := postgres.CloseDB(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		log.Error().Err(err).Msg("server-shutdown-incomplete")
		os.Exit(1)
	}
	log.Info().Msg("server-exited-gracefully")
}
