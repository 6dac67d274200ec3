package app

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookhive/recommend-service/config"
	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/handler"
	"github.com/bookhive/recommend-service/internal/recommend"
	"github.com/bookhive/recommend-service/internal/repository"
	"github.com/bookhive/recommend-service/internal/search"
	"github.com/bookhive/recommend-service/internal/server"
	"github.com/bookhive/recommend-service/internal/service"
	"github.com/bookhive/recommend-service/migrations"
	"github.com/bookhive/recommend-service/pkg/kafka"
	"github.com/bookhive/recommend-service/pkg/logger"
	"github.com/bookhive/recommend-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "recommend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var (
		store repository.Storage
		db    *sqlx.DB
	)
	switch cfg.Storage.Driver {
	case "csv":
		store = repository.NewFileStorage(cfg.Storage.Dir, log)
	default:
		var err error
		db, err = postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		if store, err = repository.NewRepository(db, log); err != nil {
			log.Fatal("repo", zap.Error(err))
		}
	}

	cat := catalog.New(ctx, store, log)
	rec := recommend.New(ctx, cat, store, log)
	idx := search.New(cat, log)
	svc := service.NewService(cat, rec, idx, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.RatingConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	h := handler.New(svc, handler.NewStatsLog(producer, kafka.StatsTopic), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return kafka.Consume(gctx, consumer, handler.NewConsumer(svc.AddRating, log), kafka.RatingTopic)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run", zap.Error(err))
	}

	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	if db != nil {
		db.Close()
	}
	log.Info("Graceful shutdown finished")
}
