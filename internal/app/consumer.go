package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"freshbit/internal/config"
	"freshbit/internal/events"
	"freshbit/internal/messaging/kafka/consumer"
	"freshbit/internal/notification"
	"freshbit/internal/shared/connection"

	"go.uber.org/zap"
)

const consumerGroup = "freshbit-notification"

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	mailer := notification.NewMailer(cfg.Mail, logger)
	notifier := notification.NewNotifier(mailer, notification.NewDirectory(in.gormDB), cfg.App.FrontendURL, logger)

	accountReader := connection.NewKafkaReader(cfg.Kafka.Broker, events.AccountTopic, consumerGroup)
	defer accountReader.Close()
	driveReader := connection.NewKafkaReader(cfg.Kafka.Broker, events.DriveLifecycleTopic, consumerGroup)
	defer driveReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.Consume(ctx, accountReader, "account", notifier.HandleAccount, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.Consume(ctx, driveReader, "drive_lifecycle", notifier.HandleDrive, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
