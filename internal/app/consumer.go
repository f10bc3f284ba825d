package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"hr-portal/internal/config"
	"hr-portal/internal/events"
	"hr-portal/internal/messaging/kafka/consumer"
	"hr-portal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const leaveNotifierGroup = "hr-portal-leave-notifier"

// RunConsumer emails employees about leave decisions read from Kafka.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	sender := notification.NewSender(notificationSettings(cfg), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.LeaveDecidedTopic,
		GroupID:        leaveNotifierGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeLeaveDecided(ctx, reader, sender, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
