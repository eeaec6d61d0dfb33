package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/cache"
	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/history"
	"github.com/logibee/backoffice/internal/kafka"
	"github.com/logibee/backoffice/internal/logger"
	"github.com/logibee/backoffice/internal/repository/postgresql"
	"github.com/logibee/backoffice/internal/server"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.EnsureAdmin(ctx, database, log); err != nil {
		log.Fatal("admin bootstrap failed", zap.Error(err))
	}

	orderRepo := postgresql.NewOrderRepo(database)
	companyRepo := postgresql.NewCompanyRepo(database)
	driverRepo := postgresql.NewDriverRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	addressRepo := postgresql.NewAddressRepo(database)
	warningRepo := postgresql.NewWarningRepo(database)
	changeLogRepo := postgresql.NewChangeLogRepo(database)
	notificationRepo := postgresql.NewNotificationTaskRepo()

	recorder := audit.NewRecorder(changeLogRepo, log)
	actorCache := cache.NewActorCache(userRepo)
	reader := history.NewReader(changeLogRepo, actorCache, log)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","), log)
	} else {
		producer = kafka.NewConsolePrinter(log)
	}

	publisher := kafka.NewPublisher(database, notificationRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	}, log)

	srv := server.New(server.Deps{
		DB:        database,
		Orders:    orderRepo,
		Companies: companyRepo,
		Drivers:   driverRepo,
		Users:     userRepo,
		Addresses: addressRepo,
		Warnings:  warningRepo,
		Outbox:    notificationRepo,
		Recorder:  recorder,
		History:   reader,
		Logger:    log,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, port)
	})

	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}
