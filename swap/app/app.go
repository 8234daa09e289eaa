package app

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/kafka"
	"github.com/Astemirdum/book-swap-service/pkg/logger"
	"github.com/Astemirdum/book-swap-service/pkg/postgres"
	"github.com/Astemirdum/book-swap-service/swap/config"
	"github.com/Astemirdum/book-swap-service/swap/internal/handler"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository/memory"
	"github.com/Astemirdum/book-swap-service/swap/internal/server"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/catalog"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/cover"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/lifecycle"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/notify"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/review"
	"github.com/Astemirdum/book-swap-service/swap/migrations"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookswap")
	defer log.Sync() //nolint:errcheck

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("repository init", zap.Error(err))
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
	}

	dispatcher := notify.NewDispatcher(repo, log,
		notify.WithProducer(producer),
		notify.WithRetry(cfg.Notify.Attempts, cfg.Notify.BaseDelay),
		notify.WithEmitTimeout(cfg.Notify.Timeout),
	)

	var consumer io.Closer
	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		consumer = group
		go kafka.Consume(ctx, group, handler.NewConsumer(dispatcher.Persist, log), log, kafka.NotificationTopic)
	}

	var covers catalog.CoverBackfiller
	if cfg.Cover.Enabled {
		covers = cover.NewFetcher(cfg.Cover, cfg.Breaker, repo, nil, log)
	}

	h := handler.New(handler.Services{
		Catalog: catalog.NewService(repo, covers, log),
		Lifecycle: lifecycle.NewService(repo, dispatcher, log,
			lifecycle.WithClearAvailabilityOnComplete(cfg.Swap.ClearAvailabilityOnComplete)),
		Inbox:  notify.NewInbox(repo, log),
		Review: review.NewService(repo, cfg.Review.MinTextLength, log),
	}, cfg.Auth, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("store", cfg.Store.Driver),
		zap.Bool("kafka", cfg.Kafka.Enabled()))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	dispatcher.Wait()
	stop()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Warn("consumer close", zap.Error(err))
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
	closeRepo()
	log.Info("Graceful shutdown finished")
}

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	policy := repository.NewPolicy(cfg.Store.Timeout, cfg.Breaker, log)
	if cfg.Store.Driver == config.DriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return repository.Guard(memory.New(), policy), func() {}, nil
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.FS)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repository.NewRepository(db, policy, log)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repo, func() {
		if err := db.Close(); err != nil {
			log.Warn("db close", zap.Error(err))
		}
	}, nil
}
