package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AlexeyVin20/LibraryAPI-sub000/config"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/handler"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/notify"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/repository"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/server"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/service"
	"github.com/AlexeyVin20/LibraryAPI-sub000/migrations"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/kafka"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/logger"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "inventory")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// notification delivery is best effort: without a broker the service still runs
	var notifier service.Notifier
	if producer, err := kafka.NewProducer(cfg.Kafka); err != nil {
		log.Warn("kafka producer unavailable, notifications disabled", zap.Error(err))
	} else {
		dispatcher := notify.NewDispatcher(producer, log)
		notifier = dispatcher
		g.Go(func() error {
			dispatcher.Run(ctx)
			return producer.Close()
		})
	}

	allocSvc := service.NewAllocationService(repo, log)
	rsvSvc := service.NewReservationService(repo, log)
	fineSvc := service.NewFineService(repo, notifier, service.FineConfig{
		DailyRateCents: cfg.Accrual.DailyRateCents,
		Interval:       cfg.Accrual.Interval,
		QueueTTL:       cfg.Accrual.QueueTTL,
	}, log.Named("fines"))
	statsSvc := service.NewStatsService(repo, log)

	g.Go(func() error {
		fineSvc.Run(ctx)
		return nil
	})

	h := handler.New(allocSvc, rsvSvc, fineSvc, statsSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("app stopped", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
