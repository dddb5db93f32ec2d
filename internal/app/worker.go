package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshbit/internal/company"
	"freshbit/internal/config"
	"freshbit/internal/drive"
	"freshbit/internal/invitation"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/messaging/kafka/producer"
	"freshbit/internal/shared/connection"
	"freshbit/internal/shared/counter"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type expiryCloser interface {
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

// driveExpiryJob menutup drive PUBLISHED yang end_date-nya lewat. Satu run
// dibatasi timeout supaya tidak menumpuk dengan run berikutnya.
func driveExpiryJob(ctx context.Context, closer expiryCloser, logger *zap.Logger) func() {
	return func() {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		closed, err := closer.CloseExpired(runCtx, time.Now().UTC())
		if err != nil {
			logger.Error("close expired drives failed", zap.Int("closed", closed), zap.Error(err))
			return
		}
		if closed > 0 {
			logger.Info("expired drives closed", zap.Int("closed", closed))
		}
	}
}

func newScheduler(ctx context.Context, cfg config.WorkerConfig, closer expiryCloser, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := c.AddFunc(cfg.DriveExpiryCron, driveExpiryJob(ctx, closer, logger.Named("job.drive_expiry"))); err != nil {
		return nil, err
	}
	return c, nil
}

func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	in, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(in.sqlDB)
	invitationRepo := invitation.NewRepository(in.gormDB)
	driveService := drive.NewService(
		in.sqlDB,
		drive.NewRepository(in.gormDB),
		counter.NewRepository(in.gormDB),
		company.NewService(company.NewRepository(in.gormDB), logger),
		invitation.NewStageAuthorizer(invitationRepo),
		outboxRepo,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler, err := newScheduler(ctx, cfg.Worker, driveService, logger)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()
	logger.Info("drive expiry job scheduled", zap.String("spec", cfg.Worker.DriveExpiryCron))

	relay := producer.NewRelay(outboxRepo, kafkaWriter, logger)
	go relay.Run(ctx, cfg.Worker.OutboxInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
