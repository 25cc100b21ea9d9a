package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadp "lendhub-backend/internal/adapter/http"
	"lendhub-backend/internal/adapter/middleware"
	"lendhub-backend/internal/adapter/repository/gormrepo"
	"lendhub-backend/internal/config"
	domainLead "lendhub-backend/internal/domain/lead"
	"lendhub-backend/internal/infrastructure/cache"
	"lendhub-backend/internal/infrastructure/db"
	"lendhub-backend/internal/infrastructure/logging"
	"lendhub-backend/internal/infrastructure/queue"
	ucLead "lendhub-backend/internal/usecase/lead"
	ucLender "lendhub-backend/internal/usecase/lender"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("open redis: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	var publisher domainLead.EventPublisher = domainLead.NopPublisher{}
	if cfg.AMQPURL != "" {
		mq, err := queue.NewRabbitMQPublisher(cfg.AMQPURL)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		defer func() { _ = mq.Close() }()
		publisher = mq
	} else {
		log.Info("AMQP_URL not set, lead events are not published")
	}

	leadRepo := gormrepo.NewLeadRepository(gdb)
	leadUC := ucLead.NewUsecase(
		gormrepo.NewGormUoW(gdb),
		leadRepo,
		gormrepo.NewActivityRepository(gdb),
		ucLead.WithPublisher(publisher),
		ucLead.WithLogger(log.Named("leads")),
		ucLead.WithTimeout(cfg.StoreTimeout()),
	)
	lenderUC := ucLender.NewUsecase(gormrepo.NewLenderRepository(gdb), cfg.StoreTimeout())

	e := httpadp.NewEcho(log.Named("http"), cfg.CORSOrigins)
	httpadp.Routes{
		Health: httpadp.NewHandler(map[string]httpadp.Pinger{
			"db": func(ctx context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Leads:       httpadp.NewLeadHandler(leadUC),
		Lenders:     httpadp.NewLenderHandler(lenderUC),
		Auth:        middleware.ActorAuth([]byte(cfg.JWTSecret), cfg.JWTIssuer),
		Idempotency: middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log.Named("idempotency")),
	}.Register(e)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
