package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/leonidsliusar/webtronics-social/config"
	"github.com/leonidsliusar/webtronics-social/internal/api"
	"github.com/leonidsliusar/webtronics-social/internal/api/handler"
	"github.com/leonidsliusar/webtronics-social/internal/cache"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
	"github.com/leonidsliusar/webtronics-social/internal/service"
	"github.com/leonidsliusar/webtronics-social/pkg/database"
	"github.com/leonidsliusar/webtronics-social/pkg/logger"
	"github.com/leonidsliusar/webtronics-social/pkg/tracing"
)

// @title webtronics-social API
// @version 1.0
// @description Social content backend: auth, posts and ratings.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Server.Mode)
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("sentry init", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing.Endpoint, "webtronics-social")
	if err != nil {
		logger.Fatal("tracing init", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	rdb, err := database.InitRedis(cfg)
	if err != nil {
		logger.Fatal("redis init", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	reactionRepo := repository.NewReactionRepository(db)

	replicator := service.NewReactionReplicator(reactionRepo, cfg.Replicator.QueueSize)
	stopReplicator := replicator.Start(cfg.Replicator.Workers)

	tokens := service.NewTokenService(cfg.JWT, userRepo)
	authSvc := service.NewAuthService(userRepo)
	postSvc := service.NewPostService(postRepo)
	ratingSvc := service.NewRatingService(postRepo, cache.NewRatingStore(rdb), replicator)

	h := handler.New(authSvc, tokens, postSvc, ratingSvc)
	router := api.NewRouter(cfg, h, tokens)

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: router}
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := stopReplicator(shutdownCtx); err != nil {
		logger.Error("replicator shutdown", zap.Error(err))
	}
}
